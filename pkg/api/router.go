package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gestaolivre/brtypes/pkg/environment"
	"github.com/gestaolivre/brtypes/pkg/httpserver"
	"github.com/gestaolivre/brtypes/pkg/i18n"
	"github.com/gestaolivre/brtypes/pkg/logger"
	"github.com/gestaolivre/brtypes/pkg/requestid"
)

// ErrNilTranslator is returned by NewRouter without a translator.
var ErrNilTranslator = errors.New("api: translator is nil")

type options struct {
	cfg     Config
	logger  *slog.Logger
	metrics *Metrics
	random  io.Reader
	env     environment.Environment
	checks  []func(context.Context) error
}

// Option configures NewRouter.
type Option func(*options)

func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics shares m instead of creating a fresh Metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithRandom sets the entropy source for generated numbers. The default is
// crypto/rand.
func WithRandom(r io.Reader) Option {
	return func(o *options) { o.random = r }
}

func WithEnvironment(env environment.Environment) Option {
	return func(o *options) { o.env = env }
}

// WithReadinessChecks makes /healthz run checks and report READY or
// NOT_READY instead of ALIVE.
func WithReadinessChecks(checks ...func(context.Context) error) Option {
	return func(o *options) { o.checks = append(o.checks, checks...) }
}

// NewRouter builds the HTTP handler of the service.
func NewRouter(tr *i18n.Translator, opts ...Option) (http.Handler, error) {
	if tr == nil {
		return nil, ErrNilTranslator
	}

	o := &options{
		cfg:    DefaultConfig(),
		logger: logger.Discard(),
		env:    environment.Development,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.metrics == nil {
		o.metrics = NewMetrics()
	}
	def := DefaultConfig()
	if o.cfg.MaxBatch <= 0 {
		o.cfg.MaxBatch = def.MaxBatch
	}
	if o.cfg.MaxGenerate <= 0 {
		o.cfg.MaxGenerate = def.MaxGenerate
	}

	h := &handlers{
		tr:      tr,
		log:     o.logger.With(logger.Component("api")),
		cfg:     o.cfg,
		metrics: o.metrics,
		random:  o.random,
	}

	r := chi.NewRouter()
	r.Use(h.middlewares(o.env)...)
	r.NotFound(h.wrap(h.notFound))
	r.MethodNotAllowed(h.wrap(h.methodNotAllowed))

	r.Get("/healthz", httpserver.HealthCheckHandler(h.log, o.checks...))
	r.Handle("/metrics", o.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		if o.cfg.RateLimit > 0 && o.cfg.RateWindow > 0 {
			r.Use(rateLimit(o.cfg.RateLimit, o.cfg.RateWindow, tr, o.metrics))
		}
		r.Post("/validate", h.wrap(h.validate))
		r.Get("/{kind}/generate", h.wrap(h.generate))
		r.Get("/{kind}/{value}", h.wrap(h.describe))
	})

	return r, nil
}

// middlewares returns the stack shared by every route, outermost first.
// Metrics wrap the recoverer so requests that panic are counted as 500s.
func (h *handlers) middlewares(env environment.Environment) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		requestid.Middleware,
		environment.Middleware(env),
		i18n.Middleware(h.tr),
		requestLogger(h.log),
		h.metrics.instrument,
		recoverer(h.log, h.tr),
	}
}
