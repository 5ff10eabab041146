// Package report renders filter results for the command line.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/diagscope/diagscope/internal/diagnostic"
	"github.com/diagscope/diagscope/internal/query"
	"github.com/diagscope/diagscope/pkg/pagination"
)

// WriteTable prints one page of entries in a fixed-width table, one row per
// diagnostic, followed by a match summary.
func WriteTable(w io.Writer, res *pagination.OffsetResult[diagnostic.Entry]) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := []string{"ID", "TITLE", "PLOT", "FACETS"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, e := range res.Items {
		row := []string{
			e.ID.String(),
			e.Title(),
			e.Plot,
			formatFacets(e),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Page %d (%d of %d matches)\n", res.Page, len(res.Items), res.Total)

	tw.Flush()
}

// WriteFacets prints the facet vocabulary: every facet name with its
// distinct values.
func WriteFacets(w io.Writer, facets map[string][]string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "FACET\tVALUES")
	fmt.Fprintln(tw, "---\t---")

	names := make([]string, 0, len(facets))
	for name := range facets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintln(tw, name+"\t"+strings.Join(facets[name], ", "))
	}

	tw.Flush()
}

// formatFacets joins an entry's facets as name=value pairs in name order.
// The title facet is skipped; it already has its own column.
func formatFacets(e diagnostic.Entry) string {
	names := e.FacetNames()
	pairs := make([]string, 0, len(names))
	for _, n := range names {
		if n == query.TitleFacet {
			continue
		}
		pairs = append(pairs, n+"="+e.Facets[n])
	}
	return strings.Join(pairs, ", ")
}
