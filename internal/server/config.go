package server

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/diagscope/diagscope/pkg/config/env"
	"github.com/diagscope/diagscope/pkg/stringsutil"
)

const defaultPort = "8080"

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
}

// LoadConfig reads the HTTP listener settings from the environment. Every
// value has a workable default, so an empty environment yields a server on
// :8080 that answers any origin.
func LoadConfig() (*Config, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/diag_api/.env"); err != nil {
		slog.Info("No .env file loaded, using process environment", "error", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return nil, fmt.Errorf("PORT %q is not a valid TCP port", port)
	}

	return &Config{
		Port:        port,
		UseHttp2:    os.Getenv("USE_HTTP2") == "true",
		CorsOrigins: corsOrigins(os.Getenv("CORS_ORIGINS")),
	}, nil
}

// corsOrigins splits a comma-separated origin list. An unset or blank list
// allows every origin.
func corsOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	parts = stringsutil.RemoveEmptyStrings(parts)
	if len(parts) == 0 {
		return []string{"*"}
	}
	return parts
}
