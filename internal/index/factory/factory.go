package factory

import (
	"context"
	"fmt"

	"github.com/diagscope/diagscope/internal/index"
	"github.com/diagscope/diagscope/internal/index/es"
	"github.com/diagscope/diagscope/internal/index/pg"
)

// NewSource builds the index source for the configured backend.
func NewSource(ctx context.Context, cfg *SourceConfig) (index.Source, error) {
	switch cfg.Type {
	case index.File:
		return index.NewFileSource(cfg.File.Path), nil

	case index.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return pg.NewSource(pool), nil

	case index.ES:
		return es.NewSource(*cfg.Es)

	default:
		return nil, fmt.Errorf(string(index.ErrUnsupportedSource), cfg.Type)
	}
}

// NewPublisher builds the publish target for the configured backend.
func NewPublisher(ctx context.Context, cfg *SourceConfig) (index.Publisher, error) {
	switch cfg.Type {
	case index.File:
		return index.NewFileWriter(cfg.File.Path), nil

	case index.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return pg.NewStorer(pool), nil

	case index.ES:
		return es.NewIndexer(*cfg.Es)

	default:
		return nil, fmt.Errorf(string(index.ErrUnsupportedSource), cfg.Type)
	}
}
