package httpserver

import (
	"log/slog"
	"net"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for lifecycle events. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithListener serves on ln instead of listening on Config.Addr.
func WithListener(ln net.Listener) Option {
	if ln == nil {
		panic("WithListener: nil listener")
	}
	return func(s *Server) { s.ln = ln }
}
