package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/diagscope/diagscope/internal/index"
	"github.com/diagscope/diagscope/internal/query"
	"github.com/diagscope/diagscope/internal/report"
	"github.com/diagscope/diagscope/pkg/pagination"
)

func main() {
	cfg := parseFlags()
	ctx := context.Background()

	if cfg.IndexPath == "" {
		slog.Error("Missing required -index flag")
		os.Exit(1)
	}

	catalog := index.NewCatalog(index.NewFileSource(cfg.IndexPath))
	if err := catalog.Reload(ctx); err != nil {
		slog.Error("Failed to load diagnostic index", "error", err, "path", cfg.IndexPath)
		os.Exit(1)
	}

	if cfg.Facets {
		report.WriteFacets(os.Stdout, catalog.Facets())
		return
	}

	pred, err := query.Compile(cfg.Query)
	if err != nil {
		slog.Error("Invalid filter expression", "error", err)
		os.Exit(1)
	}

	page := pagination.OffsetRequest{Page: cfg.Page, Size: cfg.Size}
	_ = page.Validate()

	res := catalog.Filter(pred, &page)
	report.WriteTable(os.Stdout, res)

	if cfg.Output != "" {
		if err := report.WriteJSON(res, cfg.Output); err != nil {
			slog.Error("Failed to write JSON output", "error", err)
			os.Exit(1)
		}
		slog.Info("Results written", "path", cfg.Output)
	}
}
