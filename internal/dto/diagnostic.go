package dto

import (
	"github.com/google/uuid"

	"github.com/diagscope/diagscope/internal/diagnostic"
)

// Diagnostic is the wire shape of a catalog entry. Facets carry the full
// key/value set, including the title facet, so clients can build follow-up
// filters from any field they see.
type Diagnostic struct {
	ID      uuid.UUID         `json:"id"`
	Title   string            `json:"title"`
	Plot    string            `json:"plot"`
	Caption string            `json:"caption,omitempty"`
	Facets  map[string]string `json:"facets"`
}

func FromEntry(e diagnostic.Entry) Diagnostic {
	return Diagnostic{
		ID:      e.ID,
		Title:   e.Title(),
		Plot:    e.Plot,
		Caption: e.Caption,
		Facets:  e.Facets,
	}
}

func FromEntries(entries []diagnostic.Entry) []Diagnostic {
	out := make([]Diagnostic, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromEntry(e))
	}
	return out
}

// FacetCatalog maps every facet name in the catalog to its distinct values,
// sorted. It is the vocabulary clients use to offer filter suggestions.
type FacetCatalog struct {
	Facets map[string][]string `json:"facets"`
}
