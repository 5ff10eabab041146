package runner

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	// StatusOK: the case ran and every expectation it carried held.
	StatusOK Status = "ok"
	// StatusMismatch: the case ran but the matches contradict an expectation.
	StatusMismatch Status = "mismatch"
	// StatusError: the expression failed to compile; nothing was measured.
	StatusError Status = "error"
)

// CaseResult is the outcome of one suite case.
type CaseResult struct {
	CaseID      string
	Description string
	Query       string

	// Matches is the number of entries the predicate accepted; MatchIDs are
	// their ids in catalog order, from the final measured iteration.
	Matches  int64
	MatchIDs []uuid.UUID

	// Missing and Unexpected are only populated when the case carries
	// expect_ids: ids the case expected but did not match, and ids it
	// matched but did not expect.
	Missing    []uuid.UUID
	Unexpected []uuid.UUID

	ExpectTotal *int64
	Latency     LatencyStats
	Err         error
}

func (r CaseResult) Status() Status {
	switch {
	case r.Err != nil:
		return StatusError
	case r.ExpectTotal != nil && *r.ExpectTotal != r.Matches:
		return StatusMismatch
	case len(r.Missing) > 0 || len(r.Unexpected) > 0:
		return StatusMismatch
	default:
		return StatusOK
	}
}

// Result is the outcome of a whole suite run. Cases are keyed by id;
// CaseOrder preserves the suite's order for deterministic reporting.
type Result struct {
	SuiteName    string
	SuiteVersion string
	CorpusSize   int
	Config       Config
	CaseOrder    []string
	Cases        map[string]CaseResult
	Elapsed      time.Duration
}

func (r *Result) Counts() (ok, mismatched, errored int) {
	for _, cr := range r.Cases {
		switch cr.Status() {
		case StatusOK:
			ok++
		case StatusMismatch:
			mismatched++
		case StatusError:
			errored++
		}
	}
	return ok, mismatched, errored
}

// Failed reports whether any case erred or missed its expectations, so
// callers can turn a benchmark run into a conformance gate.
func (r *Result) Failed() bool {
	_, mismatched, errored := r.Counts()
	return mismatched > 0 || errored > 0
}
