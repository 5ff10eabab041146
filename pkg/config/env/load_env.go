package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from one or more .env files into the process
// environment. ENV_PATH overrides the default paths when set. A missing file
// is fatal only in local mode; deployed environments configure through real
// env vars and may not ship a .env at all.
func LoadDotEnv(env string, defaultPaths ...string) error {
	paths := defaultPaths
	if envPath := os.Getenv("ENV_PATH"); envPath != "" {
		paths = []string{envPath}
	} else {
		slog.Info("ENV_PATH is not set, using default paths", "defaultPaths", defaultPaths)
	}

	if err := godotenv.Load(paths...); err != nil {
		if env == "local" || env == "" {
			slog.Error("Failed to load environment variables in local mode", "error", err)
			return err
		}
		slog.Debug("Skipping .env files", "paths", paths)
	}

	return nil
}

// LogLevel reads LOG_LEVEL (debug, info, warn, error; case-insensitive).
// Anything unset or unparseable falls back to info.
func LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(os.Getenv("LOG_LEVEL"))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
