package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JSONSchema represents a JSON Schema document
type JSONSchema struct {
	Schema               string                 `json:"$schema,omitempty"`
	ID                   string                 `json:"$id,omitempty"`
	Title                string                 `json:"title,omitempty"`
	Description          string                 `json:"description,omitempty"`
	Type                 string                 `json:"type"`
	Format               string                 `json:"format,omitempty"`
	Required             []string               `json:"required,omitempty"`
	Properties           map[string]*JSONSchema `json:"properties,omitempty"`
	Items                *JSONSchema            `json:"items,omitempty"`
	AdditionalProperties *JSONSchema            `json:"additionalProperties,omitempty"`
}

const schemaRef = "https://json-schema.org/draft/2020-12/schema"

// Types that marshal as formatted strings rather than by their Go kind.
// uuid.UUID is a [16]byte array, so it has to be matched by identity
// before any kind-based dispatch sees it.
var (
	uuidType = reflect.TypeOf(uuid.UUID{})
	timeType = reflect.TypeOf(time.Time{})
)

// Generator generates JSON schemas from Go structs
type Generator struct{}

// NewGenerator creates a new schema generator
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateSchema generates a JSON schema from a Go type
func (g *Generator) GenerateSchema(t reflect.Type) (*JSONSchema, error) {
	return g.generateSchemaForType(t, true)
}

func (g *Generator) generateSchemaForType(t reflect.Type, isRoot bool) (*JSONSchema, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t {
	case uuidType:
		return &JSONSchema{Type: "string", Format: "uuid"}, nil
	case timeType:
		return &JSONSchema{Type: "string", Format: "date-time"}, nil
	}

	switch t.Kind() {
	case reflect.Struct:
		return g.generateStructSchema(t, isRoot)
	case reflect.Slice, reflect.Array:
		return g.generateSliceSchema(t)
	case reflect.Map:
		return g.generateMapSchema(t)
	case reflect.String:
		return &JSONSchema{Type: "string"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &JSONSchema{Type: "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return &JSONSchema{Type: "number"}, nil
	case reflect.Bool:
		return &JSONSchema{Type: "boolean"}, nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", t.Kind())
	}
}

func (g *Generator) generateStructSchema(t reflect.Type, isRoot bool) (*JSONSchema, error) {
	schema := &JSONSchema{
		Type:       "object",
		Properties: make(map[string]*JSONSchema),
	}

	if isRoot {
		schema.Schema = schemaRef
		schema.Title = t.Name()
		schema.ID = fmt.Sprintf("https://schemas.diagscope.io/%s", strings.ToLower(t.Name()))
	}

	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		fieldName := g.getFieldName(field)
		if fieldName == "" {
			continue
		}

		fieldSchema, err := g.generateFieldSchema(field)
		if err != nil {
			return nil, fmt.Errorf("failed to generate schema for field %s: %w", field.Name, err)
		}

		schema.Properties[fieldName] = fieldSchema

		if g.isFieldRequired(field) {
			required = append(required, fieldName)
		}
	}

	if len(required) > 0 {
		schema.Required = required
	}

	return schema, nil
}

func (g *Generator) generateSliceSchema(t reflect.Type) (*JSONSchema, error) {
	itemSchema, err := g.generateSchemaForType(t.Elem(), false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema for array items: %w", err)
	}

	return &JSONSchema{Type: "array", Items: itemSchema}, nil
}

func (g *Generator) generateMapSchema(t reflect.Type) (*JSONSchema, error) {
	if t.Key().Kind() != reflect.String {
		return nil, fmt.Errorf("unsupported map key type: %s", t.Key().Kind())
	}

	valueSchema, err := g.generateSchemaForType(t.Elem(), false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema for map values: %w", err)
	}

	return &JSONSchema{Type: "object", AdditionalProperties: valueSchema}, nil
}

func (g *Generator) generateFieldSchema(field reflect.StructField) (*JSONSchema, error) {
	fieldSchema, err := g.generateSchemaForType(field.Type, false)
	if err != nil {
		return nil, err
	}

	if desc := field.Tag.Get("description"); desc != "" {
		fieldSchema.Description = desc
	}

	return fieldSchema, nil
}

func (g *Generator) getFieldName(field reflect.StructField) string {
	jsonTag := field.Tag.Get("json")
	if jsonTag == "" {
		return strings.ToLower(field.Name[:1]) + field.Name[1:]
	}

	parts := strings.Split(jsonTag, ",")
	if parts[0] == "" {
		return strings.ToLower(field.Name[:1]) + field.Name[1:]
	}

	return parts[0]
}

// isFieldRequired treats omitempty as the optionality marker: a field the
// encoder may leave out is optional, everything else is required.
func (g *Generator) isFieldRequired(field reflect.StructField) bool {
	jsonTag := field.Tag.Get("json")
	if jsonTag == "" {
		return true
	}

	parts := strings.Split(jsonTag, ",")
	for _, part := range parts[1:] {
		if strings.TrimSpace(part) == "omitempty" {
			return false
		}
	}
	return true
}

// GenerateJSONSchema generates a JSON schema as a JSON string
func (g *Generator) GenerateJSONSchema(v interface{}) (string, error) {
	t := reflect.TypeOf(v)
	schema, err := g.GenerateSchema(t)
	if err != nil {
		return "", err
	}

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}

	return string(jsonBytes), nil
}
