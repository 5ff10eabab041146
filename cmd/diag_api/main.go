// Package main Diagscope API
// @title Diagscope API
// @version 1.0
// @description A facet query API for exploring published climate diagnostics
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@diagscope.io
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	_ "github.com/diagscope/diagscope/docs"
	"github.com/diagscope/diagscope/internal/index"
	"github.com/diagscope/diagscope/internal/index/factory"
	"github.com/diagscope/diagscope/internal/router"
	"github.com/diagscope/diagscope/internal/server"
	"github.com/diagscope/diagscope/pkg/config/env"
	pkgserver "github.com/diagscope/diagscope/pkg/server"
)

func main() {
	slog.SetLogLoggerLevel(env.LogLevel())

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// The catalog is created after the server so the index source can dial
	// with the server's signal-aware context. Readiness tracks it through
	// the closure: /health answers 503 until the first load completes.
	var catalog *index.Catalog
	healthChecker := pkgserver.HealthCheckerFunc(func(ctx context.Context) bool {
		return catalog != nil && catalog.Healthy(ctx)
	})

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Diagscope API is running")
	})

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	source, err := factory.NewSource(s.Context(), &cfg.SourceConfig)
	if err != nil {
		slog.Error("Failed to create index source", "error", err)
		os.Exit(1)
		return
	}

	catalog = index.NewCatalog(source)
	if err := catalog.Reload(s.Context()); err != nil {
		slog.Error("Failed to load diagnostic index", "error", err)
		os.Exit(1)
		return
	}

	diagRouter := router.NewDiagnosticsRouter(s.Echo, catalog)
	diagRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
