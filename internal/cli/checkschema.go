package cli

import (
	"fmt"
	"sort"

	"github.com/xeipuuv/gojsonschema"

	"github.com/aretw0/devfolio"
	"github.com/aretw0/devfolio/pkg/catalog"
	"github.com/aretw0/devfolio/pkg/jsonschema"
	"github.com/aretw0/devfolio/pkg/schema"
)

// SchemaCheck compares the built-in validator with a generic JSON Schema
// validator running the exported schema on the same document.
type SchemaCheck struct {
	Native     []string `json:"native"`
	JSONSchema []string `json:"jsonSchema"`
}

// Agree reports whether both validators reach the same verdict.
func (c SchemaCheck) Agree() bool {
	return (len(c.Native) == 0) == (len(c.JSONSchema) == 0)
}

// CheckSchema validates data with v and with the JSON Schema export of the
// portfolio schema, exported under the same unknown-key policy.
func CheckSchema(v *devfolio.Validator, policy schema.UnknownKeys, data any) (SchemaCheck, error) {
	exported, err := jsonschema.Marshal(catalog.Document(), jsonschema.WithUnknownKeys(policy))
	if err != nil {
		return SchemaCheck{}, fmt.Errorf("failed to export schema: %w", err)
	}

	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(exported), gojsonschema.NewGoLoader(data))
	if err != nil {
		return SchemaCheck{}, fmt.Errorf("json schema validation failed: %w", err)
	}

	check := SchemaCheck{Native: v.Validate(data).Errors}
	for _, e := range res.Errors() {
		check.JSONSchema = append(check.JSONSchema, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	sort.Strings(check.JSONSchema)
	return check, nil
}
