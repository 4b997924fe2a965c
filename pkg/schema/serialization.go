package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Descriptor is a flat, serializable view of one field of a schema tree.
type Descriptor struct {
	Path        string   `json:"path" yaml:"path"`
	Type        string   `json:"type" yaml:"type"`
	Required    bool     `json:"required" yaml:"required"`
	Constraints []string `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// Describe flattens every field reachable from t into descriptors, in
// declaration order. Array elements appear under "<field>[]".
func Describe(t Type) []Descriptor {
	var out []Descriptor
	describe(t, "", &out)
	return out
}

func describe(t Type, prefix string, out *[]Descriptor) {
	switch n := t.(type) {
	case *ObjectType:
		for _, f := range n.Fields {
			path := f.Name
			if prefix != "" {
				path = prefix + "." + f.Name
			}
			*out = append(*out, Descriptor{
				Path:        path,
				Type:        typeName(f.Type),
				Required:    f.Required,
				Constraints: constraints(f),
				Description: f.Description,
			})
			describe(f.Type, path, out)
		}
	case *SliceType:
		describe(n.Elem, prefix+"[]", out)
	}
}

func typeName(t Type) string {
	if t == nil {
		return "invalid"
	}
	return t.Name()
}

func constraints(f Field) []string {
	var cs []string
	switch n := f.Type.(type) {
	case *StringType:
		if n.MinLength != nil {
			cs = append(cs, fmt.Sprintf("minLength=%d", *n.MinLength))
		}
		if n.Length != nil {
			cs = append(cs, fmt.Sprintf("length=%d", *n.Length))
		}
		if n.Pattern != nil {
			cs = append(cs, "pattern="+n.Pattern.String())
		}
	case *NumberType:
		if n.Minimum != nil {
			cs = append(cs, "minimum="+formatNumber(*n.Minimum))
		}
		if n.Maximum != nil {
			cs = append(cs, "maximum="+formatNumber(*n.Maximum))
		}
	case *EnumType:
		cs = append(cs, "one of "+strings.Join(n.Values, ", "))
	}
	if f.Default != nil {
		cs = append(cs, fmt.Sprintf("default=%v", f.Default))
	}
	return cs
}

// MarshalJSON serializes the object as a map of field names to type names.
func (t *ObjectType) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("null"), nil
	}
	raw := make(map[string]string, len(t.Fields))
	for _, f := range t.Fields {
		if f.Type == nil {
			return nil, fmt.Errorf("field %s: type is nil", f.Name)
		}
		name := f.Type.Name()
		if !f.Required {
			name += "?"
		}
		raw[f.Name] = name
	}
	return json.Marshal(raw)
}
