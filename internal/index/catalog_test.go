package index

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diagscope/diagscope/internal/diagnostic"
	"github.com/diagscope/diagscope/internal/query"
	"github.com/diagscope/diagscope/pkg/pagination"
)

type stubSource struct {
	entries []diagnostic.Entry
	err     error
}

func (s *stubSource) Load(ctx context.Context) ([]diagnostic.Entry, error) {
	return s.entries, s.err
}

func testEntries() []diagnostic.Entry {
	return []diagnostic.Entry{
		{
			ID:   uuid.MustParse("00000000-0000-0000-0000-000000000001"),
			Plot: "plots/tas_cesm2.png",
			Facets: query.Record{
				"title":    "Global Mean Temperature",
				"model":    "CESM2",
				"variable": "tas",
			},
		},
		{
			ID:   uuid.MustParse("00000000-0000-0000-0000-000000000002"),
			Plot: "plots/tas_era5.png",
			Facets: query.Record{
				"title":    "Global Mean Temperature Reference",
				"model":    "ERA5",
				"variable": "tas",
			},
		},
		{
			ID:   uuid.MustParse("00000000-0000-0000-0000-000000000003"),
			Plot: "plots/siconc_cesm2.png",
			Facets: query.Record{
				"title":    "Arctic Sea Ice",
				"model":    "CESM2",
				"variable": "siconc",
			},
		},
	}
}

func mustCompile(t *testing.T, input string) query.Predicate {
	t.Helper()
	pred, err := query.Compile(input)
	require.NoError(t, err)
	return pred
}

func defaultPage() *pagination.OffsetRequest {
	page := &pagination.OffsetRequest{}
	_ = page.Validate()
	return page
}

func TestCatalog_Filter(t *testing.T) {
	catalog := NewCatalog(&stubSource{})
	catalog.Replace(testEntries())

	t.Run("facet condition", func(t *testing.T) {
		res := catalog.Filter(mustCompile(t, "model = CESM2"), defaultPage())
		assert.Equal(t, int64(2), res.Total)
		require.Len(t, res.Items, 2)
		assert.Equal(t, "plots/tas_cesm2.png", res.Items[0].Plot)
		assert.Equal(t, "plots/siconc_cesm2.png", res.Items[1].Plot)
	})

	t.Run("bare word hits titles", func(t *testing.T) {
		res := catalog.Filter(mustCompile(t, "temperature"), defaultPage())
		assert.Equal(t, int64(2), res.Total)
	})

	t.Run("combined query", func(t *testing.T) {
		res := catalog.Filter(mustCompile(t, "variable: tas AND NOT model = ERA5"), defaultPage())
		require.Len(t, res.Items, 1)
		assert.Equal(t, "CESM2", res.Items[0].Facets["model"])
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		res := catalog.Filter(mustCompile(t, ""), defaultPage())
		assert.Equal(t, int64(3), res.Total)
	})

	t.Run("no matches yields empty page", func(t *testing.T) {
		res := catalog.Filter(mustCompile(t, "model = UKESM1"), defaultPage())
		assert.Equal(t, int64(0), res.Total)
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
		assert.False(t, res.HasMore)
	})
}

func TestCatalog_FilterPagination(t *testing.T) {
	catalog := NewCatalog(&stubSource{})
	catalog.Replace(testEntries())

	page := &pagination.OffsetRequest{Page: 1, Size: 2}
	res := catalog.Filter(query.MatchAll(), page)
	assert.Equal(t, int64(3), res.Total)
	assert.Len(t, res.Items, 2)
	assert.True(t, res.HasMore)

	page = &pagination.OffsetRequest{Page: 2, Size: 2}
	res = catalog.Filter(query.MatchAll(), page)
	assert.Len(t, res.Items, 1)
	assert.False(t, res.HasMore)

	page = &pagination.OffsetRequest{Page: 9, Size: 2}
	res = catalog.Filter(query.MatchAll(), page)
	assert.Empty(t, res.Items)
	assert.Equal(t, int64(3), res.Total)
}

func TestCatalog_Get(t *testing.T) {
	catalog := NewCatalog(&stubSource{})
	catalog.Replace(testEntries())

	entry, ok := catalog.Get(uuid.MustParse("00000000-0000-0000-0000-000000000003"))
	require.True(t, ok)
	assert.Equal(t, "Arctic Sea Ice", entry.Title())

	_, ok = catalog.Get(uuid.New())
	assert.False(t, ok)
}

func TestCatalog_Reload(t *testing.T) {
	t.Run("replaces contents from source", func(t *testing.T) {
		src := &stubSource{entries: testEntries()}
		catalog := NewCatalog(src)

		require.NoError(t, catalog.Reload(context.Background()))
		assert.Equal(t, 3, catalog.Len())

		src.entries = src.entries[:1]
		require.NoError(t, catalog.Reload(context.Background()))
		assert.Equal(t, 1, catalog.Len())
	})

	t.Run("source failure keeps old contents", func(t *testing.T) {
		src := &stubSource{entries: testEntries()}
		catalog := NewCatalog(src)
		require.NoError(t, catalog.Reload(context.Background()))

		src.err = errors.New("backend down")
		require.Error(t, catalog.Reload(context.Background()))
		assert.Equal(t, 3, catalog.Len())
	})
}

func TestCatalog_Loaded(t *testing.T) {
	catalog := NewCatalog(&stubSource{})
	assert.False(t, catalog.Loaded())
	assert.False(t, catalog.Healthy(context.Background()))

	catalog.Replace(nil)
	assert.True(t, catalog.Loaded(), "an empty catalog still counts as loaded")
	assert.True(t, catalog.Healthy(context.Background()))
}

func TestCatalog_Facets(t *testing.T) {
	catalog := NewCatalog(&stubSource{})
	catalog.Replace(testEntries())

	facets := catalog.Facets()
	assert.Equal(t, []string{"CESM2", "ERA5"}, facets["model"])
	assert.Equal(t, []string{"siconc", "tas"}, facets["variable"])
	assert.Len(t, facets["title"], 3)
}
