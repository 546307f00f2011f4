// Package app wires configuration, logging, telemetry, and the HTTP server
// into a single lifecycle with graceful shutdown.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skillsenselab/backend/internal/config"
	"github.com/skillsenselab/backend/internal/logger"
	"github.com/skillsenselab/backend/internal/observability"
	"github.com/skillsenselab/backend/internal/server"
	"github.com/skillsenselab/backend/internal/version"
)

const gracefulTimeout = 15 * time.Second

// App is the running application.
type App struct {
	Cfg    *config.Settings
	Logger *logger.Logger
	Server *server.Server

	// shutdown hooks run in reverse registration order on exit.
	shutdown []func(context.Context) error
}

// New loads configuration, initializes the logger, and builds the HTTP
// server with its middleware stack and routes.
func New(opts ...config.LoaderOption) (*App, error) {
	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger.Init(cfg.Logging)
	log := logger.GetGlobalLogger()

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()
	server.RegisterRoutes(srv, cfg.AppName, cfg.StartTime)

	return &App{
		Cfg:    cfg,
		Logger: log.WithComponent("app"),
		Server: srv,
	}, nil
}

// Run starts the application and blocks until SIGINT/SIGTERM or context
// cancellation, then shuts everything down gracefully.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.Cfg.Telemetry.Enabled {
		if err := a.initTelemetry(ctx); err != nil {
			return err
		}
	}

	if err := a.Server.Start(ctx); err != nil {
		return err
	}

	a.Logger.Info("Application started", map[string]interface{}{
		"name":        a.Cfg.AppName,
		"environment": a.Cfg.Environment,
		"addr":        a.Server.Addr(),
		"version":     version.Get().Version,
	})

	<-ctx.Done()
	a.Logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulTimeout)
	defer cancel()

	var firstErr error
	if err := a.Server.Stop(shutdownCtx); err != nil {
		firstErr = err
	}
	for i := len(a.shutdown) - 1; i >= 0; i-- {
		if err := a.shutdown[i](shutdownCtx); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	a.Logger.Info("Application stopped")
	return firstErr
}

// initTelemetry starts the tracer and meter providers and registers their
// shutdown hooks.
func (a *App) initTelemetry(ctx context.Context) error {
	v := version.Get().Version

	tp, err := observability.InitTracer(ctx, a.Cfg.AppName, v, a.Cfg.Environment, a.Cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing tracer: %w", err)
	}
	a.shutdown = append(a.shutdown, tp.Shutdown)

	mp, err := observability.InitMeter(ctx, a.Cfg.AppName, v, a.Cfg.Environment, a.Cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing meter: %w", err)
	}
	a.shutdown = append(a.shutdown, mp.Shutdown)

	return nil
}
