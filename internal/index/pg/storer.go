package pg

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diagscope/diagscope/internal/diagnostic"
	"github.com/diagscope/diagscope/internal/index"
)

// Storer publishes diagnostics into the diagnostics table.
type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) *Storer {
	return &Storer{db: pool.conn}
}

// Publish swaps the table contents for the given entries in one
// transaction. Publishing is a whole-catalog operation; readers never see a
// half-written index.
func (s *Storer) Publish(ctx context.Context, entries []diagnostic.Entry) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `TRUNCATE diagnostics`); err != nil {
		return fmt.Errorf("failed to truncate diagnostics: %w", err)
	}

	rows := make([][]interface{}, len(entries))
	for i, e := range entries {
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}

		facetsJSON, err := json.Marshal(e.Facets)
		if err != nil {
			return fmt.Errorf("failed to marshal facets for %s: %w", e.ID, err)
		}

		rows[i] = []interface{}{e.ID, e.Plot, e.Caption, facetsJSON}
	}

	if _, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"diagnostics"},
		[]string{"id", "plot", "caption", "facets"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("failed to bulk insert diagnostics: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	slog.Info("Diagnostics published to postgres", "count", len(entries))
	return nil
}

var _ index.Publisher = (*Storer)(nil)
