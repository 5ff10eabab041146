package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/diagscope/diagscope/internal/index/factory"
	"github.com/diagscope/diagscope/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type DiagPublishConfig struct {
	InputPath string
	factory.SourceConfig
}

func (ac *AppConfig) Load() (*DiagPublishConfig, error) {
	err := env.LoadDotEnv(ac.ENV, "cmd/diag_publish/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	targetCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load publish target configuration from environment", "error", err)
		return nil, err
	}

	inputPath := os.Getenv("INPUT_PATH")
	if inputPath == "" {
		slog.Error("INPUT_PATH environment variable is not set")
		return nil, fmt.Errorf("INPUT_PATH environment variable is not set")
	}

	return &DiagPublishConfig{
		InputPath:    inputPath,
		SourceConfig: *targetCfg,
	}, nil
}
