package pg

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diagscope/diagscope/internal/diagnostic"
	"github.com/diagscope/diagscope/internal/index"
	"github.com/diagscope/diagscope/internal/query"
)

// Source loads the full diagnostics table. Facets live in a jsonb column;
// they are decoded here so the rest of the system never sees raw JSON.
type Source struct {
	db *pgxpool.Pool
}

func NewSource(pool *ConnectionPool) *Source {
	return &Source{db: pool.conn}
}

const loadSQL = `
	SELECT id, plot, caption, facets
	FROM diagnostics
	ORDER BY id
`

func (s *Source) Load(ctx context.Context) ([]diagnostic.Entry, error) {
	rows, err := s.db.Query(ctx, loadSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query diagnostics: %w", err)
	}
	defer rows.Close()

	var entries []diagnostic.Entry
	for rows.Next() {
		var entry diagnostic.Entry
		var facetsJSON []byte

		if err := rows.Scan(&entry.ID, &entry.Plot, &entry.Caption, &facetsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan diagnostic: %w", err)
		}

		entry.Facets = query.Record{}
		if err := json.Unmarshal(facetsJSON, &entry.Facets); err != nil {
			return nil, fmt.Errorf("failed to unmarshal facets for %s: %w", entry.ID, err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	slog.Info("Diagnostics loaded from postgres", "count", len(entries))
	return entries, nil
}

var _ index.Source = (*Source)(nil)
