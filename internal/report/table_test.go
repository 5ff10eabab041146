package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/diagscope/diagscope/internal/diagnostic"
	"github.com/diagscope/diagscope/internal/query"
	"github.com/diagscope/diagscope/pkg/pagination"
)

func TestWriteTable(t *testing.T) {
	entries := []diagnostic.Entry{
		{
			ID:   uuid.MustParse("9c30f7a2-0000-4000-8000-000000000001"),
			Plot: "plots/tas_trend.png",
			Facets: query.Record{
				"title":    "Temperature trend",
				"variable": "tas",
				"model":    "ERA5",
			},
		},
	}
	res := pagination.NewOffsetResult(entries, 5, 1, 10)

	var buf bytes.Buffer
	WriteTable(&buf, res)
	out := buf.String()

	if !strings.Contains(out, "Temperature trend") {
		t.Errorf("expected title in output, got:\n%s", out)
	}
	if !strings.Contains(out, "model=ERA5, variable=tas") {
		t.Errorf("expected facet pairs in name order, got:\n%s", out)
	}
	if strings.Contains(out, "title=") {
		t.Errorf("title facet should not repeat in the FACETS column, got:\n%s", out)
	}
	if !strings.Contains(out, "Page 1 (1 of 5 matches)") {
		t.Errorf("expected match summary, got:\n%s", out)
	}
}

func TestWriteFacets(t *testing.T) {
	var buf bytes.Buffer
	WriteFacets(&buf, map[string][]string{
		"variable": {"pr", "tas"},
		"model":    {"ERA5"},
	})
	out := buf.String()

	modelIdx := strings.Index(out, "model")
	variableIdx := strings.Index(out, "variable")
	if modelIdx == -1 || variableIdx == -1 {
		t.Fatalf("expected both facet names in output, got:\n%s", out)
	}
	if modelIdx > variableIdx {
		t.Errorf("expected facet names in sorted order, got:\n%s", out)
	}
	if !strings.Contains(out, "pr, tas") {
		t.Errorf("expected joined values, got:\n%s", out)
	}
}
