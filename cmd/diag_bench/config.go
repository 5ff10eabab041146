package main

import (
	"flag"

	"github.com/diagscope/diagscope/internal/bench/runner"
)

type cliConfig struct {
	IndexPath string
	SuitePath string
	Warmup    int
	Runs      int
	Workers   int
	Output    string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.IndexPath, "index", "", "Path to the diagnostic index file or directory (JSON or YAML)")
	flag.StringVar(&cfg.SuitePath, "suite", "", "Path to the benchmark suite YAML")
	flag.IntVar(&cfg.Warmup, "warmup", runner.DefaultWarmupRuns, "Number of warmup compiles per case before measurement")
	flag.IntVar(&cfg.Runs, "runs", runner.DefaultRuns, "Number of measured iterations per case")
	flag.IntVar(&cfg.Workers, "workers", runner.DefaultWorkers, "Number of cases measured concurrently")
	flag.StringVar(&cfg.Output, "output", "", "Output path for the JSON report")

	flag.Parse()
	return cfg
}
