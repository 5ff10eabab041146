package diagnostic

import (
	"reflect"
	"testing"

	"github.com/diagscope/diagscope/internal/query"
)

func TestEntry_Title(t *testing.T) {
	e := Entry{Facets: query.Record{"title": "Global Mean Temperature", "model": "CESM2"}}
	if e.Title() != "Global Mean Temperature" {
		t.Errorf("expected title facet, got %q", e.Title())
	}

	var empty Entry
	if empty.Title() != "" {
		t.Errorf("expected empty title for entry without facets, got %q", empty.Title())
	}
}

func TestEntry_FacetNames(t *testing.T) {
	e := Entry{Facets: query.Record{"variable": "tas", "model": "CESM2", "season": "DJF"}}

	want := []string{"model", "season", "variable"}
	if got := e.FacetNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
