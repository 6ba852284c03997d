// Package httpserver runs an http.Handler until its context is cancelled and
// then drains in-flight requests within a shutdown timeout.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	err := srv.Run(ctx, router)
//
// Run does not install signal handlers; callers derive ctx from
// signal.NotifyContext.
package httpserver
