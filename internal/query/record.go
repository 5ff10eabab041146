package query

import "sort"

// TitleFacet is the facet a bare query literal is matched against.
const TitleFacet = "title"

// Record is the unit a Predicate is evaluated against: a flat set of facet
// names and their values. Facet names are matched exactly; facet values are
// compared case-insensitively.
type Record map[string]string

// FacetNames returns the record's facet names in sorted order.
func (r Record) FacetNames() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
