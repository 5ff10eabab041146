package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Filter Benchmark: %s ===\n", r.Suite.Name)
	fmt.Fprintf(tw, "corpus: %d entries, %d runs/case (%d warmup), %d workers\n\n",
		r.Suite.CorpusSize, r.Config.Runs, r.Config.WarmupRuns, r.Config.Workers)

	writeCaseTable(tw, r)
	writeSummary(tw, r)

	tw.Flush()
}

func writeCaseTable(tw *tabwriter.Writer, r *Report) {
	header := []string{"Case", "Status", "Matches", "Expect", "p50", "p95", "p99", "Mean", "Max"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, e := range r.Cases {
		row := []string{
			e.CaseID,
			strings.ToUpper(string(e.Status)),
			fmt.Sprintf("%d", e.Matches),
			fmtExpect(&e),
			fmtDuration(e.Latency.P50()),
			fmtDuration(e.Latency.P95()),
			fmtDuration(e.Latency.P99()),
			fmtDuration(e.Latency.Mean),
			fmtDuration(e.Latency.Max),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)

	for _, e := range r.Cases {
		switch {
		case e.Error != "":
			fmt.Fprintf(tw, "!! %s: %s\n", e.CaseID, e.Error)
		case len(e.Missing) > 0 || len(e.Unexpected) > 0:
			fmt.Fprintf(tw, "!! %s: %d missing, %d unexpected\n", e.CaseID, len(e.Missing), len(e.Unexpected))
		}
	}
}

func writeSummary(tw *tabwriter.Writer, r *Report) {
	s := r.Summary
	fmt.Fprintf(tw, "\n%d cases: %d passed, %d mismatched, %d errored\n",
		s.Cases, s.Passed, s.Mismatched, s.Errored)
	if !s.Latency.IsZero() {
		fmt.Fprintf(tw, "overall latency: p50=%s p95=%s p99=%s max=%s (%d samples)\n",
			fmtDuration(s.Latency.P50()),
			fmtDuration(s.Latency.P95()),
			fmtDuration(s.Latency.P99()),
			fmtDuration(s.Latency.Max),
			s.Latency.SampleCount,
		)
	}
}

func fmtExpect(e *Entry) string {
	if e.ExpectTotal != nil {
		return fmt.Sprintf("%d", *e.ExpectTotal)
	}
	return "-"
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Microseconds()))
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
