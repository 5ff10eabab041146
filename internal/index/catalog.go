package index

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/diagscope/diagscope/internal/diagnostic"
	"github.com/diagscope/diagscope/internal/query"
	"github.com/diagscope/diagscope/pkg/pagination"
)

// Catalog is the in-memory diagnostic set the API serves. Reads take a
// shared lock so Reload can swap contents under live traffic; entries keep
// the order the source returned them in.
type Catalog struct {
	source Source

	mu       sync.RWMutex
	entries  []diagnostic.Entry
	byID     map[uuid.UUID]diagnostic.Entry
	loadedAt time.Time
}

func NewCatalog(source Source) *Catalog {
	return &Catalog{
		source: source,
		byID:   make(map[uuid.UUID]diagnostic.Entry),
	}
}

// Reload fetches the complete set from the source and swaps it in.
func (c *Catalog) Reload(ctx context.Context) error {
	entries, err := c.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load index: %w", err)
	}
	c.Replace(entries)
	return nil
}

// Replace swaps the catalog contents for the given entries.
func (c *Catalog) Replace(entries []diagnostic.Entry) {
	byID := make(map[uuid.UUID]diagnostic.Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}

	c.mu.Lock()
	c.entries = entries
	c.byID = byID
	c.loadedAt = time.Now()
	c.mu.Unlock()

	slog.Info("Catalog replaced", "entries", len(entries))
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Loaded reports whether the catalog has been populated at least once. An
// empty catalog counts as loaded; a catalog that never loaded does not.
func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.loadedAt.IsZero()
}

// Healthy makes the catalog its own readiness probe: an instance that never
// loaded its index would answer every query with nothing.
func (c *Catalog) Healthy(ctx context.Context) bool {
	return c.Loaded()
}

// Get returns the entry with the given id.
func (c *Catalog) Get(id uuid.UUID) (diagnostic.Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.byID[id]
	return e, ok
}

// Filter tests every entry against pred and returns the requested page of
// matches in catalog order. The result's Total counts all matches, not just
// the page.
func (c *Catalog) Filter(pred query.Predicate, page *pagination.OffsetRequest) *pagination.OffsetResult[diagnostic.Entry] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	matched := make([]diagnostic.Entry, 0)
	for _, e := range c.entries {
		if pred.Test(e.Facets) {
			matched = append(matched, e)
		}
	}

	start := page.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Size
	if end > len(matched) {
		end = len(matched)
	}

	return pagination.NewOffsetResult(matched[start:end], int64(len(matched)), page.Page, page.Size)
}

// Facets returns every facet name with its sorted distinct values: the
// vocabulary a client needs to offer filter controls.
func (c *Catalog) Facets() map[string][]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]map[string]struct{})
	for _, e := range c.entries {
		for name, value := range e.Facets {
			if seen[name] == nil {
				seen[name] = make(map[string]struct{})
			}
			seen[name][value] = struct{}{}
		}
	}

	facets := make(map[string][]string, len(seen))
	for name, values := range seen {
		list := make([]string, 0, len(values))
		for v := range values {
			list = append(list, v)
		}
		sort.Strings(list)
		facets[name] = list
	}
	return facets
}
