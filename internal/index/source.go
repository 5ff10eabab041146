package index

import (
	"context"

	"github.com/diagscope/diagscope/internal/diagnostic"
)

// Source loads the published diagnostics an instance serves. A source always
// returns the complete set: filtering is a catalog concern, never pushed
// down to the backend.
type Source interface {
	Load(ctx context.Context) ([]diagnostic.Entry, error)
}

// Type names an index backend.
type Type string

const (
	File Type = "file"
	PG   Type = "pg"
	ES   Type = "es"
)

type SourceError string

const (
	ErrUnsupportedSource SourceError = "unsupported index source type: %s"
)

func (e SourceError) Error() string {
	return string(e)
}
