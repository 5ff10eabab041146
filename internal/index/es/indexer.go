package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"

	"github.com/diagscope/diagscope/internal/diagnostic"
	"github.com/diagscope/diagscope/internal/index"
)

// Indexer publishes diagnostics into the search index.
type Indexer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewIndexer(config ClientConfig) (*Indexer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Indexer{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

// Publish replaces the index contents with the given entries: the old index
// is dropped so withdrawn diagnostics disappear, then everything is bulk
// indexed into a fresh one.
func (ix *Indexer) Publish(ctx context.Context, entries []diagnostic.Entry) error {
	if err := ix.Recreate(ctx); err != nil {
		return err
	}
	return ix.IndexBulk(ctx, entries)
}

// EnsureIndex creates the index with the diagnostics mapping unless it
// already exists.
func (ix *Indexer) EnsureIndex(ctx context.Context) error {
	exists, err := ix.client.Indices.Exists(ix.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", ix.indexName)
		return nil
	}

	return ix.createIndex(ctx)
}

// Recreate drops and recreates the index. Publishing replaces the whole
// catalog; reusing the old index would leave withdrawn diagnostics behind.
func (ix *Indexer) Recreate(ctx context.Context) error {
	exists, err := ix.client.Indices.Exists(ix.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		if _, err := ix.client.Indices.Delete(ix.indexName).Do(ctx); err != nil {
			return fmt.Errorf("failed to delete index: %w", err)
		}
		slog.Info("Stale index deleted", "index", ix.indexName)
	}

	return ix.createIndex(ctx)
}

func (ix *Indexer) createIndex(ctx context.Context) error {
	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":      types.NewKeywordProperty(),
			"plot":    types.NewKeywordProperty(),
			"caption": types.NewTextProperty(),
			"facets":  types.NewFlattenedProperty(),
		},
	}

	createRes, err := ix.client.Indices.Create(ix.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", ix.indexName)
	return nil
}

// IndexBulk writes entries through the bulk indexer and refreshes the index
// so they are searchable as soon as the call returns.
func (ix *Indexer) IndexBulk(ctx context.Context, entries []diagnostic.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         ix.indexName,
		Client:        ix.client,
		NumWorkers:    4,
		FlushBytes:    5e+6,
		FlushInterval: 30 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var failed atomic.Int64

	for _, entry := range entries {
		doc := toDocument(entry)

		docBytes, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document %s: %w", doc.ID, err)
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.ID,
			Body:       bytes.NewReader(docBytes),
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			return fmt.Errorf("failed to add document %s to bulk indexer: %w", doc.ID, err)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d diagnostics", n, len(entries))
	}

	if _, err := ix.client.Indices.Refresh().Index(ix.indexName).Do(ctx); err != nil {
		return fmt.Errorf("failed to refresh index: %w", err)
	}

	slog.Info("Bulk indexing completed", "count", len(entries), "index", ix.indexName)
	return nil
}

var _ index.Publisher = (*Indexer)(nil)
