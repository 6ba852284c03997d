package main

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/gestaolivre/brtypes/pkg/api"
	"github.com/gestaolivre/brtypes/pkg/config"
	"github.com/gestaolivre/brtypes/pkg/environment"
	"github.com/gestaolivre/brtypes/pkg/httpserver"
	"github.com/gestaolivre/brtypes/pkg/i18n"
	"github.com/gestaolivre/brtypes/pkg/logger"
	"github.com/gestaolivre/brtypes/pkg/requestid"
)

const serviceName = "brtypes"

type appConfig struct {
	Env       environment.Environment `env:"APP_ENV" envDefault:"development"`
	LogLevel  string                  `env:"LOG_LEVEL"`
	LogFormat string                  `env:"LOG_FORMAT"`

	HTTP httpserver.Config
	API  api.Config
}

func newLogger(cfg appConfig, env *cliEnv) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithOutput(env.stderr),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), nil
}

// runServe serves the HTTP API until ctx is cancelled.
func runServe(ctx context.Context, args []string, env *cliEnv) error {
	fs := newFlagSet("serve", env)
	envFile := fs.String("env-file", "", "read variables from this file instead of .env")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	var loadOpts []config.Option
	if *envFile != "" {
		loadOpts = append(loadOpts, config.WithEnvFiles(*envFile))
	}
	var cfg appConfig
	if err := config.Load(&cfg, loadOpts...); err != nil {
		return err
	}

	log, err := newLogger(cfg, env)
	if err != nil {
		return err
	}

	tr, err := i18n.NewTranslator(ctx, i18n.Catalog(),
		i18n.WithDefaultLanguage(cfg.API.DefaultLanguage),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(cfg.Env != environment.Production),
	)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	router, err := api.NewRouter(tr,
		api.WithConfig(cfg.API),
		api.WithLogger(log),
		api.WithEnvironment(cfg.Env),
	)
	if err != nil {
		return err
	}

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx, router)
	})
	g.Go(func() error {
		select {
		case <-srv.Ready():
			log.InfoContext(gctx, "serving",
				slog.String("addr", srv.Addr()),
				slog.Any("languages", tr.SupportedLanguages()),
			)
		case <-gctx.Done():
		}
		return nil
	})

	return g.Wait()
}
