package diagnostic

import (
	"github.com/google/uuid"

	"github.com/diagscope/diagscope/internal/query"
)

// Entry is one published diagnostic: a rendered plot plus the facet set
// describing what it shows. Facets drive all filtering; Plot and Caption
// are presentation only.
type Entry struct {
	ID      uuid.UUID    `json:"id" yaml:"id"`
	Plot    string       `json:"plot" yaml:"plot"`
	Caption string       `json:"caption,omitempty" yaml:"caption,omitempty"`
	Facets  query.Record `json:"facets" yaml:"facets"`
}

// Title returns the facet bare query words are matched against, or the
// empty string when the entry does not carry one.
func (e Entry) Title() string {
	return e.Facets[query.TitleFacet]
}

// FacetNames returns the entry's facet names in sorted order.
func (e Entry) FacetNames() []string {
	return e.Facets.FacetNames()
}
