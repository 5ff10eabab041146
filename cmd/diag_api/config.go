package main

import (
	"log/slog"
	"os"

	"github.com/diagscope/diagscope/internal/index/factory"
	"github.com/diagscope/diagscope/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type DiagApiConfig struct {
	SourceConfig factory.SourceConfig
}

func (ac *AppConfig) Load() (*DiagApiConfig, error) {
	err := env.LoadDotEnv(ac.ENV, "cmd/diag_api/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	sourceCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load index source configuration from environment", "error", err)
		return nil, err
	}

	return &DiagApiConfig{
		SourceConfig: *sourceCfg,
	}, nil
}
