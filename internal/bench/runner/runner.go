package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/diagscope/diagscope/internal/bench/suite"
	"github.com/diagscope/diagscope/internal/diagnostic"
	"github.com/diagscope/diagscope/internal/query"
)

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	return &Runner{config: cfg.normalized()}
}

// Run measures every suite case against the given entries. Cases are fanned
// out to Workers goroutines; compiles share nothing, so concurrent cases
// need no coordination beyond collecting their results.
func (r *Runner) Run(ctx context.Context, s *suite.Suite, entries []diagnostic.Entry) (*Result, error) {
	started := time.Now()

	res := &Result{
		SuiteName:    s.Name,
		SuiteVersion: s.Version,
		CorpusSize:   len(entries),
		Config:       r.config,
		CaseOrder:    make([]string, 0, len(s.Cases)),
		Cases:        make(map[string]CaseResult, len(s.Cases)),
	}
	for _, c := range s.Cases {
		res.CaseOrder = append(res.CaseOrder, c.ID)
	}

	jobs := make(chan suite.Case)
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for w := 0; w < r.config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				cr := r.runCase(ctx, &c, entries)
				mu.Lock()
				res.Cases[c.ID] = cr
				mu.Unlock()
			}
		}()
	}

feed:
	for _, c := range s.Cases {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- c:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("benchmark interrupted: %w", err)
	}

	res.Elapsed = time.Since(started)
	return res, nil
}

func (r *Runner) runCase(ctx context.Context, c *suite.Case, entries []diagnostic.Entry) CaseResult {
	cr := CaseResult{
		CaseID:      c.ID,
		Description: c.Description,
		Query:       c.Query,
		ExpectTotal: c.ExpectTotal,
	}

	for i := 0; i < r.config.WarmupRuns; i++ {
		if _, err := filterOnce(c.Query, entries); err != nil {
			cr.Err = err
			return cr
		}
	}

	samples := make([]time.Duration, 0, r.config.Runs)
	var matched []uuid.UUID
	for i := 0; i < r.config.Runs; i++ {
		if err := ctx.Err(); err != nil {
			cr.Err = err
			return cr
		}

		begin := time.Now()
		ids, err := filterOnce(c.Query, entries)
		if err != nil {
			cr.Err = err
			return cr
		}
		samples = append(samples, time.Since(begin))
		matched = ids
	}

	cr.Matches = int64(len(matched))
	cr.MatchIDs = matched
	cr.Latency = ComputeLatencyStats(samples)

	if len(c.ExpectIDs) > 0 {
		cr.Missing, cr.Unexpected = diffExpectations(c.ExpectedSet(), matched)
	}

	return cr
}

// filterOnce is the measured unit: compile the expression from scratch and
// test every entry, exactly what a host does per settled edit.
func filterOnce(input string, entries []diagnostic.Entry) ([]uuid.UUID, error) {
	pred, err := query.Compile(input)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", input, err)
	}

	matched := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		if pred.Test(e.Facets) {
			matched = append(matched, e.ID)
		}
	}
	return matched, nil
}

func diffExpectations(expected map[uuid.UUID]struct{}, matched []uuid.UUID) (missing, unexpected []uuid.UUID) {
	got := make(map[uuid.UUID]struct{}, len(matched))
	for _, id := range matched {
		got[id] = struct{}{}
		if _, ok := expected[id]; !ok {
			unexpected = append(unexpected, id)
		}
	}
	for id := range expected {
		if _, ok := got[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, unexpected
}
