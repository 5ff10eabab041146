package index

import (
	"context"

	"github.com/diagscope/diagscope/internal/diagnostic"
)

// Publisher is the write side of an index backend. Publish replaces the
// backend's contents with the given entries; partial updates are not part of
// the model, a publishing run always emits the complete catalog.
type Publisher interface {
	Publish(ctx context.Context, entries []diagnostic.Entry) error
}
