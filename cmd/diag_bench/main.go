package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/diagscope/diagscope/internal/bench/report"
	"github.com/diagscope/diagscope/internal/bench/runner"
	"github.com/diagscope/diagscope/internal/bench/suite"
	"github.com/diagscope/diagscope/internal/index"
)

func main() {
	cfg := parseFlags()
	ctx := context.Background()

	if cfg.IndexPath == "" {
		slog.Error("Missing required -index flag")
		os.Exit(1)
	}
	if cfg.SuitePath == "" {
		slog.Error("Missing required -suite flag")
		os.Exit(1)
	}

	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load benchmark suite", "error", err, "path", cfg.SuitePath)
		os.Exit(1)
	}

	entries, err := index.NewFileSource(cfg.IndexPath).Load(ctx)
	if err != nil {
		slog.Error("Failed to load diagnostic index", "error", err, "path", cfg.IndexPath)
		os.Exit(1)
	}

	r := runner.New(runner.Config{
		WarmupRuns: cfg.Warmup,
		Runs:       cfg.Runs,
		Workers:    cfg.Workers,
	})

	result, err := r.Run(ctx, s, entries)
	if err != nil {
		slog.Error("Benchmark failed", "error", err)
		os.Exit(1)
	}

	rpt := report.Generate(result)
	report.WriteTable(rpt, os.Stdout)

	if cfg.Output != "" {
		if err := report.WriteJSON(rpt, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	if result.Failed() {
		os.Exit(1)
	}
}
