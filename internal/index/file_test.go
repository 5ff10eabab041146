package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diagscope/diagscope/internal/diagnostic"
	"github.com/diagscope/diagscope/internal/query"
)

func TestParseIndexFile(t *testing.T) {
	t.Run("json index", func(t *testing.T) {
		data := `{
  "name": "cmip6-atlas",
  "generated_at": "2024-05-01T12:00:00Z",
  "diagnostics": [
    {
      "id": "5e0cf1a4-1b5b-4be1-93a1-1a39238754e3",
      "plot": "plots/tas_global.png",
      "caption": "Global mean surface temperature",
      "facets": {
        "title": "Global Mean Temperature",
        "model": "CESM2",
        "variable": "tas"
      }
    }
  ]
}`
		file, err := ParseIndexFile([]byte(data), ".json")
		require.NoError(t, err)
		assert.Equal(t, "cmip6-atlas", file.Name)
		assert.Equal(t, 2024, file.GeneratedAt.Year())
		require.Len(t, file.Diagnostics, 1)

		entry := file.Diagnostics[0]
		assert.Equal(t, uuid.MustParse("5e0cf1a4-1b5b-4be1-93a1-1a39238754e3"), entry.ID)
		assert.Equal(t, "plots/tas_global.png", entry.Plot)
		assert.Equal(t, "CESM2", entry.Facets["model"])
		assert.Equal(t, "Global Mean Temperature", entry.Title())
	})

	t.Run("yaml index", func(t *testing.T) {
		data := `
name: cmip6-atlas
generated_at: 2024-05-01T12:00:00Z
diagnostics:
  - id: 5e0cf1a4-1b5b-4be1-93a1-1a39238754e3
    plot: plots/siconc_sep.png
    caption: September sea ice concentration
    facets:
      title: Arctic Sea Ice
      variable: siconc
      season: SON
`
		file, err := ParseIndexFile([]byte(data), ".yaml")
		require.NoError(t, err)
		assert.Equal(t, "cmip6-atlas", file.Name)
		require.Len(t, file.Diagnostics, 1)
		assert.Equal(t, "siconc", file.Diagnostics[0].Facets["variable"])
	})

	t.Run("yml extension is yaml", func(t *testing.T) {
		data := "name: tiny\ndiagnostics: []\n"
		file, err := ParseIndexFile([]byte(data), ".yml")
		require.NoError(t, err)
		assert.Equal(t, "tiny", file.Name)
	})

	t.Run("missing ids are assigned", func(t *testing.T) {
		data := `{"name": "x", "diagnostics": [{"plot": "a.png", "facets": {}}, {"plot": "b.png", "facets": {}}]}`
		file, err := ParseIndexFile([]byte(data), ".json")
		require.NoError(t, err)
		require.Len(t, file.Diagnostics, 2)
		assert.NotEqual(t, uuid.Nil, file.Diagnostics[0].ID)
		assert.NotEqual(t, uuid.Nil, file.Diagnostics[1].ID)
		assert.NotEqual(t, file.Diagnostics[0].ID, file.Diagnostics[1].ID)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := ParseIndexFile([]byte("a,b,c"), ".csv")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported index format")
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ParseIndexFile([]byte(`{"name":`), ".json")
		require.Error(t, err)
	})
}

func TestFileSource_Load(t *testing.T) {
	t.Run("loads entries from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "index.json")
		data := `{"name": "x", "diagnostics": [{"plot": "a.png", "facets": {"title": "A"}}]}`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		entries, err := NewFileSource(path).Load(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "A", entries[0].Title())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileSource(filepath.Join(t.TempDir(), "absent.json")).Load(context.Background())
		require.Error(t, err)
	})

	t.Run("directory concatenates index files in name order", func(t *testing.T) {
		dir := t.TempDir()
		first := `{"name": "run-a", "diagnostics": [{"plot": "a.png", "facets": {"title": "A"}}]}`
		second := "name: run-b\ndiagnostics:\n  - plot: b.png\n    facets:\n      title: B\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "01_run_a.json"), []byte(first), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "02_run_b.yaml"), []byte(second), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))

		entries, err := NewFileSource(dir).Load(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "A", entries[0].Title())
		assert.Equal(t, "B", entries[1].Title())
	})

	t.Run("directory without index files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

		_, err := NewFileSource(dir).Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no index files")
	})
}

func TestFileWriter_Publish(t *testing.T) {
	entries := []diagnostic.Entry{
		{
			ID:      uuid.MustParse("5e0cf1a4-1b5b-4be1-93a1-1a39238754e3"),
			Plot:    "plots/tas_global.png",
			Caption: "Global mean surface temperature",
			Facets:  query.Record{"title": "Global Mean Temperature", "variable": "tas"},
		},
	}

	t.Run("json round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "atlas.json")
		require.NoError(t, NewFileWriter(path).Publish(context.Background(), entries))

		loaded, err := NewFileSource(path).Load(context.Background())
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, entries[0].ID, loaded[0].ID)
		assert.Equal(t, "tas", loaded[0].Facets["variable"])
	})

	t.Run("yaml round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "atlas.yaml")
		require.NoError(t, NewFileWriter(path).Publish(context.Background(), entries))

		loaded, err := NewFileSource(path).Load(context.Background())
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "Global Mean Temperature", loaded[0].Title())
	})

	t.Run("file name becomes catalog name", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cmip6-atlas.json")
		require.NoError(t, NewFileWriter(path).Publish(context.Background(), entries))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		file, err := ParseIndexFile(data, ".json")
		require.NoError(t, err)
		assert.Equal(t, "cmip6-atlas", file.Name)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		err := NewFileWriter(filepath.Join(t.TempDir(), "atlas.csv")).Publish(context.Background(), entries)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported index format")
	})
}
