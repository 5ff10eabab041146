package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"

	"github.com/diagscope/diagscope/internal/diagnostic"
	"github.com/diagscope/diagscope/internal/index"
)

// loadBatchSize is the page size used to drain the index. Paging goes
// through search_after, which has no deep-pagination ceiling.
const loadBatchSize = 500

// Source loads every document from the diagnostics index.
type Source struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewSource(config ClientConfig) (*Source, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Source{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

func (s *Source) Load(ctx context.Context) ([]diagnostic.Entry, error) {
	sortAsc := sortorder.Asc

	var entries []diagnostic.Entry
	var searchAfter []types.FieldValue

	for {
		req := s.client.Search().
			Index(s.indexName).
			Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
			Size(loadBatchSize).
			Sort(&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id": {Order: &sortAsc},
				},
			})

		if searchAfter != nil {
			req = req.SearchAfter(searchAfter...)
		}

		res, err := req.Do(ctx)
		if err != nil {
			slog.Error("Elasticsearch load failed", "error", err, "index", s.indexName)
			return nil, fmt.Errorf("failed to load diagnostics: %w", err)
		}

		var lastID string
		for _, hit := range res.Hits.Hits {
			var doc Document
			if err := json.Unmarshal(hit.Source_, &doc); err != nil {
				return nil, fmt.Errorf("failed to unmarshal document: %w", err)
			}

			entry, err := doc.toEntry()
			if err != nil {
				return nil, err
			}

			entries = append(entries, entry)
			lastID = doc.ID
		}

		if len(res.Hits.Hits) < loadBatchSize {
			break
		}
		searchAfter = []types.FieldValue{lastID}
	}

	slog.Info("Diagnostics loaded from elasticsearch", "count", len(entries), "index", s.indexName)
	return entries, nil
}

var _ index.Source = (*Source)(nil)
