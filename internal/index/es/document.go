package es

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/diagscope/diagscope/internal/diagnostic"
	"github.com/diagscope/diagscope/internal/query"
)

// Document is the diagnostics index document shape. Facets are stored as a
// flattened object so catalogs can introduce facet names freely without
// mapping explosions.
type Document struct {
	ID      string            `json:"id"`
	Plot    string            `json:"plot"`
	Caption string            `json:"caption,omitempty"`
	Facets  map[string]string `json:"facets"`
}

func toDocument(e diagnostic.Entry) Document {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return Document{
		ID:      e.ID.String(),
		Plot:    e.Plot,
		Caption: e.Caption,
		Facets:  e.Facets,
	}
}

func (d Document) toEntry() (diagnostic.Entry, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return diagnostic.Entry{}, fmt.Errorf("invalid document id %q: %w", d.ID, err)
	}

	facets := d.Facets
	if facets == nil {
		facets = query.Record{}
	}

	return diagnostic.Entry{
		ID:      id,
		Plot:    d.Plot,
		Caption: d.Caption,
		Facets:  facets,
	}, nil
}
