package schema

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	Name        string         `json:"name"`
	GeneratedAt time.Time      `json:"generated_at"`
	Entries     []entryFixture `json:"entries"`
}

type entryFixture struct {
	ID      uuid.UUID         `json:"id"`
	Plot    string            `json:"plot"`
	Caption string            `json:"caption,omitempty"`
	Facets  map[string]string `json:"facets"`
	ignored string
	Skipped string `json:"-"`
}

func TestGenerateSchema_CatalogShape(t *testing.T) {
	g := NewGenerator()
	s, err := g.GenerateSchema(reflect.TypeOf(catalogFixture{}))
	require.NoError(t, err)

	assert.Equal(t, "https://json-schema.org/draft/2020-12/schema", s.Schema)
	assert.Equal(t, "catalogFixture", s.Title)
	assert.Equal(t, "https://schemas.diagscope.io/catalogfixture", s.ID)
	assert.Equal(t, "object", s.Type)
	assert.ElementsMatch(t, []string{"name", "generated_at", "entries"}, s.Required)

	ts := s.Properties["generated_at"]
	require.NotNil(t, ts)
	assert.Equal(t, "string", ts.Type)
	assert.Equal(t, "date-time", ts.Format)

	entries := s.Properties["entries"]
	require.NotNil(t, entries)
	assert.Equal(t, "array", entries.Type)
	require.NotNil(t, entries.Items)
	assert.Equal(t, "object", entries.Items.Type)
	// Nested structs carry no $schema header of their own.
	assert.Empty(t, entries.Items.Schema)
}

func TestGenerateSchema_EntryFields(t *testing.T) {
	g := NewGenerator()
	s, err := g.GenerateSchema(reflect.TypeOf(entryFixture{}))
	require.NoError(t, err)

	id := s.Properties["id"]
	require.NotNil(t, id)
	assert.Equal(t, "string", id.Type)
	assert.Equal(t, "uuid", id.Format)

	facets := s.Properties["facets"]
	require.NotNil(t, facets)
	assert.Equal(t, "object", facets.Type)
	require.NotNil(t, facets.AdditionalProperties)
	assert.Equal(t, "string", facets.AdditionalProperties.Type)

	// caption has omitempty, so it is optional; unexported and json:"-"
	// fields stay out of the schema entirely.
	assert.ElementsMatch(t, []string{"id", "plot", "facets"}, s.Required)
	assert.NotContains(t, s.Properties, "ignored")
	assert.NotContains(t, s.Properties, "Skipped")
}

func TestGenerateSchema_UnsupportedType(t *testing.T) {
	g := NewGenerator()
	_, err := g.GenerateSchema(reflect.TypeOf(struct {
		Ch chan int `json:"ch"`
	}{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type")
}

func TestGenerateSchema_UnsupportedMapKey(t *testing.T) {
	g := NewGenerator()
	_, err := g.GenerateSchema(reflect.TypeOf(map[int]string{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported map key type")
}

func TestGenerateJSONSchema_RoundTrips(t *testing.T) {
	g := NewGenerator()
	out, err := g.GenerateJSONSchema(catalogFixture{})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "catalogFixture", decoded["title"])
}
