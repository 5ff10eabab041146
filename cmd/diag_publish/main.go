package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/diagscope/diagscope/internal/index"
	"github.com/diagscope/diagscope/internal/index/factory"
	"github.com/diagscope/diagscope/pkg/config/env"
)

func main() {
	slog.SetLogLoggerLevel(env.LogLevel())

	appSettings := NewAppConfig()

	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := index.NewFileSource(cfg.InputPath)
	entries, err := source.Load(ctx)
	if err != nil {
		slog.Error("Failed to load diagnostics", "error", err, "path", cfg.InputPath)
		os.Exit(1)
	}

	publisher, err := factory.NewPublisher(ctx, &cfg.SourceConfig)
	if err != nil {
		slog.Error("Failed to create publish target", "error", err)
		os.Exit(1)
	}

	if err := publisher.Publish(ctx, entries); err != nil {
		slog.Error("Failed to publish diagnostics", "error", err)
		os.Exit(1)
	}

	slog.Info("Publish completed", "diagnostics", len(entries), "target", cfg.Type)
}
