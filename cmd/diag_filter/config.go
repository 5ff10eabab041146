package main

import (
	"flag"

	"github.com/diagscope/diagscope/pkg/pagination"
)

type cliConfig struct {
	IndexPath string
	Query     string
	Page      int
	Size      int
	Facets    bool
	Output    string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.IndexPath, "index", "", "Path to the diagnostic index file (JSON or YAML)")
	flag.StringVar(&cfg.Query, "query", "", "Facet filter expression; empty matches everything")
	flag.IntVar(&cfg.Page, "page", 1, "Page number, starting at 1")
	flag.IntVar(&cfg.Size, "size", pagination.PageDefaultSize, "Page size")
	flag.BoolVar(&cfg.Facets, "facets", false, "List facet names and values instead of entries")
	flag.StringVar(&cfg.Output, "output", "", "Output path for the result page as JSON")

	flag.Parse()
	return cfg
}
