package runner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diagscope/diagscope/internal/bench/suite"
	"github.com/diagscope/diagscope/internal/diagnostic"
	"github.com/diagscope/diagscope/internal/query"
)

var (
	idTas    = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	idPr     = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	idSiconc = uuid.MustParse("00000000-0000-0000-0000-000000000003")
)

func benchEntries() []diagnostic.Entry {
	return []diagnostic.Entry{
		{
			ID:   idTas,
			Plot: "plots/tas.png",
			Facets: query.Record{
				"title":    "Temperature trend",
				"variable": "tas",
				"model":    "CESM2",
			},
		},
		{
			ID:   idPr,
			Plot: "plots/pr.png",
			Facets: query.Record{
				"title":    "Precipitation bias",
				"variable": "pr",
				"model":    "ERA5",
			},
		},
		{
			ID:   idSiconc,
			Plot: "plots/siconc.png",
			Facets: query.Record{
				"title":    "Sea ice annual cycle",
				"variable": "siconc",
				"model":    "CESM2",
			},
		},
	}
}

func intPtr(v int64) *int64 { return &v }

func TestRunner_Run(t *testing.T) {
	s := &suite.Suite{
		Name:    "smoke",
		Version: "1.0",
		Cases: []suite.Case{
			{ID: "match-all", Query: "", ExpectTotal: intPtr(3)},
			{ID: "facet-equality", Query: "model = CESM2", ExpectIDs: []uuid.UUID{idTas, idSiconc}},
			{ID: "bare-word", Query: "bias", ExpectTotal: intPtr(1)},
		},
	}

	r := New(Config{Runs: 5, WarmupRuns: 1})
	res, err := r.Run(context.Background(), s, benchEntries())
	require.NoError(t, err)

	assert.Equal(t, "smoke", res.SuiteName)
	assert.Equal(t, 3, res.CorpusSize)
	assert.Equal(t, []string{"match-all", "facet-equality", "bare-word"}, res.CaseOrder)
	assert.Positive(t, res.Elapsed)
	require.Len(t, res.Cases, 3)

	all := res.Cases["match-all"]
	assert.Equal(t, StatusOK, all.Status())
	assert.Equal(t, int64(3), all.Matches)
	assert.Equal(t, 5, all.Latency.SampleCount)

	eq := res.Cases["facet-equality"]
	assert.Equal(t, StatusOK, eq.Status())
	assert.Equal(t, []uuid.UUID{idTas, idSiconc}, eq.MatchIDs)
	assert.Empty(t, eq.Missing)
	assert.Empty(t, eq.Unexpected)

	assert.False(t, res.Failed())
	ok, mismatched, errored := res.Counts()
	assert.Equal(t, 3, ok)
	assert.Zero(t, mismatched)
	assert.Zero(t, errored)
}

func TestRunner_DetectsMismatch(t *testing.T) {
	s := &suite.Suite{
		Name: "drift",
		Cases: []suite.Case{
			{ID: "wrong-total", Query: "variable: tas", ExpectTotal: intPtr(5)},
			{ID: "wrong-ids", Query: "model = ERA5", ExpectIDs: []uuid.UUID{idTas}},
		},
	}

	res, err := New(Config{Runs: 1}).Run(context.Background(), s, benchEntries())
	require.NoError(t, err)

	total := res.Cases["wrong-total"]
	assert.Equal(t, StatusMismatch, total.Status())
	assert.Equal(t, int64(1), total.Matches)

	ids := res.Cases["wrong-ids"]
	assert.Equal(t, StatusMismatch, ids.Status())
	assert.Equal(t, []uuid.UUID{idTas}, ids.Missing)
	assert.Equal(t, []uuid.UUID{idPr}, ids.Unexpected)

	assert.True(t, res.Failed())
}

func TestRunner_BadQueryIsACaseError(t *testing.T) {
	s := &suite.Suite{
		Name: "broken",
		Cases: []suite.Case{
			{ID: "unmatched-paren", Query: "(variable: tas"},
			{ID: "fine", Query: "variable: tas"},
		},
	}

	res, err := New(Config{Runs: 2}).Run(context.Background(), s, benchEntries())
	require.NoError(t, err, "a bad case must not abort the suite")

	bad := res.Cases["unmatched-paren"]
	assert.Equal(t, StatusError, bad.Status())
	require.Error(t, bad.Err)
	var pe *query.ParseError
	assert.ErrorAs(t, bad.Err, &pe)
	assert.True(t, bad.Latency.IsZero())

	assert.Equal(t, StatusOK, res.Cases["fine"].Status())
	assert.True(t, res.Failed())
}

func TestRunner_ConcurrentWorkers(t *testing.T) {
	cases := []suite.Case{
		{ID: "a", Query: "tas"},
		{ID: "b", Query: "model = CESM2"},
		{ID: "c", Query: "NOT variable: pr"},
		{ID: "d", Query: "bias OR trend"},
		{ID: "e", Query: `model = era5 "cycle"`},
		{ID: "f", Query: ""},
	}
	s := &suite.Suite{Name: "parallel", Cases: cases}

	res, err := New(Config{Runs: 3, Workers: 4}).Run(context.Background(), s, benchEntries())
	require.NoError(t, err)

	require.Len(t, res.Cases, len(cases))
	for _, c := range cases {
		cr, ok := res.Cases[c.ID]
		require.True(t, ok, "missing result for case %s", c.ID)
		assert.Equal(t, StatusOK, cr.Status())
		assert.Equal(t, 3, cr.Latency.SampleCount)
	}
}

func TestRunner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &suite.Suite{Name: "canceled", Cases: []suite.Case{{ID: "a", Query: "tas"}}}
	_, err := New(DefaultConfig()).Run(ctx, s, benchEntries())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
