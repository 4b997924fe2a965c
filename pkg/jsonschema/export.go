package jsonschema

import (
	"encoding/json"
	"fmt"
	"strconv"

	js "github.com/invopop/jsonschema"

	"github.com/aretw0/devfolio/pkg/schema"
)

// Draft07 is the meta-schema URI declared by exported documents.
const Draft07 = "http://json-schema.org/draft-07/schema#"

// Option configures an export.
type Option func(*exporter)

// WithTitle sets the title of the root schema. Without it the root object's
// own Title is used.
func WithTitle(title string) Option {
	return func(e *exporter) { e.title = title }
}

// WithDefinition nests the root schema under "definitions" and makes the
// document a "$ref" to it, the layout schema generators for TypeScript tend
// to produce.
func WithDefinition(name string) Option {
	return func(e *exporter) { e.definition = name }
}

// WithUnknownKeys exports every object as if it had the given policy.
// Reject maps to "additionalProperties": false; the other policies leave
// additional properties open.
func WithUnknownKeys(policy schema.UnknownKeys) Option {
	return func(e *exporter) { e.unknown = &policy }
}

// WithoutVersion omits the "$schema" keyword from the root.
func WithoutVersion() Option {
	return func(e *exporter) { e.noVersion = true }
}

type exporter struct {
	title      string
	definition string
	unknown    *schema.UnknownKeys
	noVersion  bool
}

// Export converts t into a JSON Schema (draft-07). Field order is preserved.
func Export(t schema.Type, opts ...Option) *js.Schema {
	e := &exporter{}
	for _, opt := range opts {
		opt(e)
	}

	root := e.convert(t)
	if e.title != "" {
		root.Title = e.title
	}

	if e.definition != "" {
		root = &js.Schema{
			Ref:    "#/definitions/" + e.definition,
			Extras: map[string]any{"definitions": map[string]*js.Schema{e.definition: root}},
		}
	}
	if !e.noVersion {
		root.Version = Draft07
	}
	return root
}

// Marshal exports t and renders it as indented JSON.
func Marshal(t schema.Type, opts ...Option) ([]byte, error) {
	data, err := json.MarshalIndent(Export(t, opts...), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json schema: %w", err)
	}
	return data, nil
}

func (e *exporter) convert(t schema.Type) *js.Schema {
	switch typ := t.(type) {
	case *schema.StringType:
		return e.convertString(typ)
	case *schema.NumberType:
		s := &js.Schema{Type: "number"}
		if typ.Minimum != nil {
			s.Minimum = number(*typ.Minimum)
		}
		if typ.Maximum != nil {
			s.Maximum = number(*typ.Maximum)
		}
		return s
	case *schema.BoolType:
		return &js.Schema{Type: "boolean"}
	case *schema.EnumType:
		values := make([]any, len(typ.Values))
		for i, v := range typ.Values {
			values[i] = v
		}
		return &js.Schema{Type: "string", Enum: values}
	case *schema.SliceType:
		return &js.Schema{Type: "array", Items: e.convert(typ.Elem)}
	case *schema.ObjectType:
		return e.convertObject(typ)
	case *schema.RecordType:
		return &js.Schema{Type: "object", AdditionalProperties: e.convert(typ.Value)}
	default:
		// Any, and nil field types, accept everything.
		return &js.Schema{}
	}
}

func (e *exporter) convertString(t *schema.StringType) *js.Schema {
	s := &js.Schema{Type: "string"}
	switch t.Format {
	case schema.FormatEmail:
		s.Format = "email"
	case schema.FormatURL:
		s.Format = "uri"
	case schema.FormatDateTime:
		s.Format = "date-time"
	}
	if t.MinLength != nil {
		s.MinLength = length(*t.MinLength)
	}
	if t.Length != nil {
		s.MinLength = length(*t.Length)
		s.MaxLength = length(*t.Length)
	}
	if t.Pattern != nil {
		s.Pattern = t.Pattern.String()
	}
	return s
}

func (e *exporter) convertObject(t *schema.ObjectType) *js.Schema {
	s := &js.Schema{
		Type:       "object",
		Title:      t.Title,
		Properties: js.NewProperties(),
		Required:   t.RequiredFields(),
	}
	for _, f := range t.Fields {
		prop := e.convert(f.Type)
		if f.Description != "" {
			prop.Description = f.Description
		}
		if f.Default != nil {
			prop.Default = f.Default
		}
		s.Properties.Set(f.Name, prop)
	}

	policy := t.Unknown
	if e.unknown != nil {
		policy = *e.unknown
	}
	if policy == schema.Reject {
		s.AdditionalProperties = js.FalseSchema
	}
	return s
}

func number(f float64) json.Number {
	return json.Number(strconv.FormatFloat(f, 'f', -1, 64))
}

func length(n int) *uint64 {
	if n < 0 {
		n = 0
	}
	u := uint64(n)
	return &u
}
