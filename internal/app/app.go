package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/regtoken/internal/config"
	"github.com/ferdiebergado/regtoken/internal/middleware"
	"github.com/ferdiebergado/regtoken/internal/pkg/logging"
	"github.com/ferdiebergado/regtoken/internal/platform/router"
	"github.com/ferdiebergado/regtoken/internal/platform/validation"
	"github.com/ferdiebergado/regtoken/internal/provider"
	"github.com/ferdiebergado/regtoken/internal/token"
)

const (
	DefaultEnvFile    = ".env"
	DefaultConfigFile = "config.json"
)

// Options locates the files Run reads its settings from.
type Options struct {
	ConfigFile string
	EnvFile    string
}

type App struct {
	server          *http.Server
	config          *config.Config
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	router          router.Router
	validator       validation.Validator
	tokenModule     *token.Module
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	serverCfg := a.config.Server
	mountTokenRoutes(a.router, a.tokenModule.Handler(), a.validator, serverCfg.MaxBodyBytes, serverCfg.AllowedOrigin)
}

// Handler returns the root handler with all middlewares and routes mounted.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

func (a *App) Start(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

// DefaultMiddlewares returns the middlewares applied to every route.
func DefaultMiddlewares() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.ContextGuard,
	}
}

func New(p *provider.Provider, clock func() time.Time, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := p.Cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: p.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	tokenModule := token.NewModule(&token.Provider{
		Cfg:       p.Cfg,
		Signature: p.Signature,
		Clock:     clock,
	})

	a := &App{
		config:          p.Cfg,
		router:          p.Router,
		validator:       p.Validator,
		tokenModule:     tokenModule,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}

	a.registerMiddlewares()
	a.setupRoutes()

	return a
}

// Run serves the token endpoints until ctx is done, then shuts the server down.
func Run(ctx context.Context, opts Options) error {
	if opts.ConfigFile == "" {
		opts.ConfigFile = DefaultConfigFile
	}
	if opts.EnvFile == "" {
		opts.EnvFile = DefaultEnvFile
	}

	if os.Getenv("ENV") != "production" {
		if err := env.Load(opts.EnvFile); err != nil {
			slog.Warn("Env file not loaded.", "file", opts.EnvFile, "reason", err)
		}
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.SetupLogger(cfg.App.Env, cfg.App.LogLevel, os.Stderr)

	p, err := provider.New(cfg)
	if err != nil {
		return fmt.Errorf("new provider: %w", err)
	}

	api := New(p, time.Now, DefaultMiddlewares())
	if err := api.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}
