package index

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/diagscope/diagscope/internal/diagnostic"
)

// FileWriter publishes entries as an index file, JSON or YAML by extension.
// The file name without its extension becomes the catalog name.
type FileWriter struct {
	path string
}

func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

func (w *FileWriter) Publish(ctx context.Context, entries []diagnostic.Entry) error {
	ext := filepath.Ext(w.path)
	file := IndexFile{
		Name:        strings.TrimSuffix(filepath.Base(w.path), ext),
		GeneratedAt: time.Now().UTC(),
		Diagnostics: entries,
	}

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(ext) {
	case ".json":
		data, err = json.MarshalIndent(&file, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(&file)
	default:
		return fmt.Errorf("unsupported index format %q, expected .json, .yaml or .yml", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to encode index file: %w", err)
	}

	if err := os.WriteFile(w.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write index file: %w", err)
	}

	slog.Info("Index file written", "path", w.path, "diagnostics", len(entries))
	return nil
}

var _ Publisher = (*FileWriter)(nil)
