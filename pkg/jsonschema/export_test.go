package jsonschema_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	"github.com/aretw0/devfolio/internal/testutils"
	"github.com/aretw0/devfolio/pkg/catalog"
	"github.com/aretw0/devfolio/pkg/domain"
	"github.com/aretw0/devfolio/pkg/jsonschema"
	"github.com/aretw0/devfolio/pkg/schema"
)

func exportMap(t *testing.T, typ schema.Type, opts ...jsonschema.Option) map[string]any {
	t.Helper()
	data, err := jsonschema.Marshal(typ, opts...)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func validateWith(t *testing.T, typ schema.Type, doc any, opts ...jsonschema.Option) *gojsonschema.Result {
	t.Helper()
	data, err := jsonschema.Marshal(typ, opts...)
	require.NoError(t, err)

	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(data), gojsonschema.NewGoLoader(doc))
	require.NoError(t, err)
	return res
}

func TestExport_Root(t *testing.T) {
	out := exportMap(t, catalog.Document())

	assert.Equal(t, jsonschema.Draft07, out["$schema"])
	assert.Equal(t, "DevFolio", out["title"])
	assert.Equal(t, "object", out["type"])
	assert.NotContains(t, out, "required")

	props := out["properties"].(map[string]any)
	assert.Len(t, props, len(catalog.Document().Fields))
	assert.Equal(t, domain.DefaultSchemaURL, props["$schema"].(map[string]any)["default"])
}

func TestExport_PropertyOrder(t *testing.T) {
	data, err := jsonschema.Marshal(catalog.Work())
	require.NoError(t, err)

	text := string(data)
	var last int
	for _, f := range catalog.Work().Fields {
		idx := strings.Index(text, `"`+f.Name+`": {`)
		require.NotEqual(t, -1, idx, f.Name)
		assert.Greater(t, idx, last, "%s out of order", f.Name)
		last = idx
	}
}

func TestExport_Constraints(t *testing.T) {
	basics := exportMap(t, catalog.Basics())
	props := basics["properties"].(map[string]any)

	assert.Equal(t, []any{"name"}, basics["required"])
	assert.Equal(t, float64(1), props["name"].(map[string]any)["minLength"])
	assert.Equal(t, "email", props["email"].(map[string]any)["format"])
	assert.Equal(t, "uri", props["url"].(map[string]any)["format"])

	country := props["location"].(map[string]any)["properties"].(map[string]any)["countryCode"].(map[string]any)
	assert.Equal(t, float64(2), country["minLength"])
	assert.Equal(t, float64(2), country["maxLength"])

	skill := exportMap(t, catalog.Skill())["properties"].(map[string]any)
	rating := skill["rating"].(map[string]any)
	assert.Equal(t, float64(1), rating["minimum"])
	assert.Equal(t, float64(10), rating["maximum"])
	assert.Equal(t, "Self-assessed rating from 1 to 10", rating["description"])
	assert.Len(t, skill["level"].(map[string]any)["enum"], len(domain.SkillLevels))
	assert.Equal(t, schema.DatePattern, skill["lastUsed"].(map[string]any)["pattern"])

	meta := exportMap(t, catalog.Meta())["properties"].(map[string]any)
	assert.Equal(t, "date-time", meta["lastModified"].(map[string]any)["format"])
	assert.Equal(t, "object", meta["custom"].(map[string]any)["type"])
}

func TestExport_UnknownKeys(t *testing.T) {
	open := exportMap(t, catalog.Award())
	assert.NotContains(t, open, "additionalProperties")

	closed := exportMap(t, catalog.Award(), jsonschema.WithUnknownKeys(schema.Reject))
	assert.Equal(t, false, closed["additionalProperties"])

	doc := map[string]any{"title": "Best", "extra": 1}
	assert.True(t, validateWith(t, catalog.Award(), doc).Valid())
	assert.False(t, validateWith(t, catalog.Award(), doc, jsonschema.WithUnknownKeys(schema.Reject)).Valid())
}

func TestExport_Definition(t *testing.T) {
	out := exportMap(t, catalog.Document(), jsonschema.WithDefinition("DevFolio"))

	assert.Equal(t, "#/definitions/DevFolio", out["$ref"])
	assert.Equal(t, jsonschema.Draft07, out["$schema"])
	defs := out["definitions"].(map[string]any)
	assert.Contains(t, defs, "DevFolio")

	sample := testutils.LoadSample(t)
	res := validateWith(t, catalog.Document(), sample, jsonschema.WithDefinition("DevFolio"))
	assert.True(t, res.Valid(), res.Errors())
}

func TestExport_WithoutVersion(t *testing.T) {
	out := exportMap(t, catalog.Basics(), jsonschema.WithoutVersion(), jsonschema.WithTitle("Person"))
	assert.NotContains(t, out, "$schema")
	assert.Equal(t, "Person", out["title"])
}

func TestExport_AgreesWithEngine(t *testing.T) {
	sample := testutils.LoadSample(t)
	res := validateWith(t, catalog.Document(), sample)
	assert.True(t, res.Valid(), res.Errors())

	invalid := []map[string]any{
		{"basics": map[string]any{"name": ""}},
		{"basics": map[string]any{"name": "J", "email": "nope"}},
		{"work": []any{map[string]any{"name": "Acme"}}},
		{"skills": []any{map[string]any{"name": "Go", "rating": 0}}},
		{"skills": []any{map[string]any{"name": "Go", "level": "guru"}}},
		{"projects": "none"},
		{"meta": map[string]any{"visibility": "secret"}},
		{"education": []any{map[string]any{"institution": "U", "startDate": "2020/01/01"}}},
	}
	for _, doc := range invalid {
		assert.False(t, schema.Valid(catalog.Document(), doc), "engine accepted %v", doc)
		assert.False(t, validateWith(t, catalog.Document(), doc).Valid(), "exported schema accepted %v", doc)
	}
}

// Every record type round-trips: the minimal value passes the exported
// schema, and dropping any required field fails it.
func TestExport_RecordTypeRoundTrip(t *testing.T) {
	for _, r := range catalog.RecordTypes() {
		t.Run(r.Name, func(t *testing.T) {
			minimal := testutils.Minimal(r.Schema).(map[string]any)
			res := validateWith(t, r.Schema, minimal)
			require.True(t, res.Valid(), res.Errors())

			for _, field := range r.Schema.RequiredFields() {
				value := make(map[string]any)
				for k, v := range minimal {
					if k != field {
						value[k] = v
					}
				}
				assert.False(t, validateWith(t, r.Schema, value).Valid(), "missing %s accepted", field)
			}
		})
	}
}

// mirror asserts that node carries exactly the constraints of typ and
// returns the number of object fields it checked outside records.
func mirror(t *testing.T, path string, typ schema.Type, node map[string]any) int {
	t.Helper()
	switch n := typ.(type) {
	case *schema.StringType:
		assert.Equal(t, "string", node["type"], path)
		formats := map[schema.Format]string{
			schema.FormatEmail:    "email",
			schema.FormatURL:      "uri",
			schema.FormatDateTime: "date-time",
		}
		if f, ok := formats[n.Format]; ok {
			assert.Equal(t, f, node["format"], path)
		} else {
			assert.NotContains(t, node, "format", path)
		}
		switch {
		case n.Length != nil:
			assert.Equal(t, float64(*n.Length), node["minLength"], path)
			assert.Equal(t, float64(*n.Length), node["maxLength"], path)
		case n.MinLength != nil:
			assert.Equal(t, float64(*n.MinLength), node["minLength"], path)
			assert.NotContains(t, node, "maxLength", path)
		default:
			assert.NotContains(t, node, "minLength", path)
			assert.NotContains(t, node, "maxLength", path)
		}
		if n.Pattern != nil {
			assert.Equal(t, n.Pattern.String(), node["pattern"], path)
		} else {
			assert.NotContains(t, node, "pattern", path)
		}
	case *schema.NumberType:
		assert.Equal(t, "number", node["type"], path)
		for key, bound := range map[string]*float64{"minimum": n.Minimum, "maximum": n.Maximum} {
			if bound != nil {
				assert.Equal(t, *bound, node[key], path+" "+key)
			} else {
				assert.NotContains(t, node, key, path)
			}
		}
	case *schema.BoolType:
		assert.Equal(t, "boolean", node["type"], path)
	case *schema.EnumType:
		assert.Equal(t, "string", node["type"], path)
		values := make([]any, len(n.Values))
		for i, v := range n.Values {
			values[i] = v
		}
		assert.Equal(t, values, node["enum"], path)
	case *schema.SliceType:
		assert.Equal(t, "array", node["type"], path)
		items, ok := node["items"].(map[string]any)
		require.True(t, ok, "%s: items", path)
		return mirror(t, path+"[]", n.Elem, items)
	case *schema.RecordType:
		assert.Equal(t, "object", node["type"], path)
		values, ok := node["additionalProperties"].(map[string]any)
		require.True(t, ok, "%s: additionalProperties", path)
		mirror(t, path+"{}", n.Value, values)
	case *schema.ObjectType:
		return mirrorObject(t, path, n, node)
	default:
		assert.NotContains(t, node, "type", path)
	}
	return 0
}

func mirrorObject(t *testing.T, path string, obj *schema.ObjectType, node map[string]any) int {
	t.Helper()
	assert.Equal(t, "object", node["type"], path)
	if obj.Title != "" {
		assert.Equal(t, obj.Title, node["title"], path)
	} else {
		assert.NotContains(t, node, "title", path)
	}

	if required := obj.RequiredFields(); len(required) > 0 {
		want := make([]any, len(required))
		for i, name := range required {
			want[i] = name
		}
		assert.Equal(t, want, node["required"], path)
	} else {
		assert.NotContains(t, node, "required", path)
	}

	if obj.Unknown == schema.Reject {
		assert.Equal(t, false, node["additionalProperties"], path)
	} else {
		assert.NotContains(t, node, "additionalProperties", path)
	}

	props, ok := node["properties"].(map[string]any)
	require.True(t, ok, "%s: properties", path)
	assert.Len(t, props, len(obj.Fields), path)

	visited := 0
	for _, f := range obj.Fields {
		fieldPath := f.Name
		if path != "" {
			fieldPath = path + "." + f.Name
		}
		prop, ok := props[f.Name].(map[string]any)
		require.True(t, ok, fieldPath)

		if f.Description != "" {
			assert.Equal(t, f.Description, prop["description"], fieldPath)
		} else {
			assert.NotContains(t, prop, "description", fieldPath)
		}
		if f.Default != nil {
			data, err := json.Marshal(f.Default)
			require.NoError(t, err)
			var want any
			require.NoError(t, json.Unmarshal(data, &want))
			assert.Equal(t, want, prop["default"], fieldPath)
		} else {
			assert.NotContains(t, prop, "default", fieldPath)
		}

		visited += 1 + mirror(t, fieldPath, f.Type, prop)
	}
	return visited
}

func TestExport_MirrorsEveryConstraint(t *testing.T) {
	doc := catalog.Document()
	out := exportMap(t, doc)

	visited := mirror(t, "", doc, out)
	assert.Equal(t, len(schema.Describe(doc)), visited, "every described field is exported")
	assert.Greater(t, visited, 50)
}
