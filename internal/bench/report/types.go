package report

import (
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/diagscope/diagscope/internal/bench/runner"
)

type Report struct {
	Meta    Meta       `json:"meta"`
	Suite   SuiteInfo  `json:"suite"`
	Config  ConfigInfo `json:"config"`
	Cases   []Entry    `json:"cases"`
	Summary Summary    `json:"summary"`
}

type Meta struct {
	Timestamp   time.Time       `json:"timestamp"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type SuiteInfo struct {
	Name       string `json:"name"`
	Version    string `json:"version,omitempty"`
	CorpusSize int    `json:"corpus_size"`
}

type ConfigInfo struct {
	WarmupRuns int `json:"warmup_runs"`
	Runs       int `json:"runs"`
	Workers    int `json:"workers"`
}

type Entry struct {
	CaseID      string              `json:"case_id"`
	Description string              `json:"description,omitempty"`
	Query       string              `json:"query"`
	Status      runner.Status       `json:"status"`
	Matches     int64               `json:"matches"`
	ExpectTotal *int64              `json:"expect_total,omitempty"`
	Missing     []uuid.UUID         `json:"missing,omitempty"`
	Unexpected  []uuid.UUID         `json:"unexpected,omitempty"`
	Latency     runner.LatencyStats `json:"latency"`
	Error       string              `json:"error,omitempty"`
}

type Summary struct {
	Cases      int                 `json:"cases"`
	Passed     int                 `json:"passed"`
	Mismatched int                 `json:"mismatched"`
	Errored    int                 `json:"errored"`
	Latency    runner.LatencyStats `json:"latency"`
}

// Generate flattens a runner result into the report shape shared by the
// table and JSON writers. Cases keep the suite's order.
func Generate(res *runner.Result) *Report {
	r := &Report{
		Meta: Meta{
			Timestamp:   time.Now().UTC(),
			Environment: NewEnvironmentInfo(),
		},
		Suite: SuiteInfo{
			Name:       res.SuiteName,
			Version:    res.SuiteVersion,
			CorpusSize: res.CorpusSize,
		},
		Config: ConfigInfo{
			WarmupRuns: res.Config.WarmupRuns,
			Runs:       res.Config.Runs,
			Workers:    res.Config.Workers,
		},
		Cases: make([]Entry, 0, len(res.Cases)),
	}

	var latencies []runner.LatencyStats
	for _, id := range res.CaseOrder {
		cr, ok := res.Cases[id]
		if !ok {
			continue
		}

		e := Entry{
			CaseID:      cr.CaseID,
			Description: cr.Description,
			Query:       cr.Query,
			Status:      cr.Status(),
			Matches:     cr.Matches,
			ExpectTotal: cr.ExpectTotal,
			Missing:     cr.Missing,
			Unexpected:  cr.Unexpected,
			Latency:     cr.Latency,
		}
		if cr.Err != nil {
			e.Error = cr.Err.Error()
		}
		r.Cases = append(r.Cases, e)

		if !cr.Latency.IsZero() {
			latencies = append(latencies, cr.Latency)
		}
	}

	passed, mismatched, errored := res.Counts()
	r.Summary = Summary{
		Cases:      len(res.Cases),
		Passed:     passed,
		Mismatched: mismatched,
		Errored:    errored,
		Latency:    runner.MergeLatencyStats(latencies),
	}

	return r
}
