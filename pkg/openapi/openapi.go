package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/devfolio/pkg/catalog"
	"github.com/aretw0/devfolio/pkg/jsonschema"
)

// SchemaName is the component name of the portfolio schema.
const SchemaName = "DevFolio"

const (
	nameResult = "ValidationResult"
	nameStored = "StoredPortfolio"
	nameError  = "Error"
)

// components holds the named schemas of the document. ref returns a
// "$ref" to one of them that also carries the resolved value, as
// Validate requires.
type components openapi3.Schemas

func (c components) ref(name string) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+name, c[name].Value)
}

// PortfolioSchema converts the exported JSON Schema of the portfolio
// document into an OpenAPI schema.
func PortfolioSchema() (*openapi3.Schema, error) {
	data, err := jsonschema.Marshal(catalog.Document(), jsonschema.WithoutVersion())
	if err != nil {
		return nil, err
	}
	var s openapi3.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to convert portfolio schema: %w", err)
	}
	return &s, nil
}

// Build assembles the OpenAPI 3 description of the HTTP API.
func Build(version string) (*openapi3.T, error) {
	portfolio, err := PortfolioSchema()
	if err != nil {
		return nil, err
	}

	c := components{SchemaName: openapi3.NewSchemaRef("", portfolio)}
	portfolioRef := c.ref(SchemaName)

	violation := openapi3.NewObjectSchema().
		WithProperty("path", openapi3.NewStringSchema()).
		WithProperty("kind", openapi3.NewStringSchema().WithEnum(
			"missing_required_field", "type_mismatch", "format_violation", "unrecognized_keys", "unknown")).
		WithProperty("message", openapi3.NewStringSchema())

	result := openapi3.NewObjectSchema().
		WithProperty("success", openapi3.NewBoolSchema()).
		WithPropertyRef("data", portfolioRef).
		WithProperty("errors", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())).
		WithProperty("violations", openapi3.NewArraySchema().WithItems(violation))
	result.Required = []string{"success"}

	diff := openapi3.NewObjectSchema().
		WithProperty("added", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())).
		WithProperty("changed", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())).
		WithProperty("removed", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())).
		WithProperty("counts", openapi3.NewObjectSchema().WithAdditionalProperties(openapi3.NewIntegerSchema()))

	stored := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema()).
		WithProperty("success", openapi3.NewBoolSchema()).
		WithPropertyRef("data", portfolioRef).
		WithProperty("errors", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())).
		WithProperty("diff", diff)
	stored.Required = []string{"id", "success"}

	errSchema := openapi3.NewObjectSchema().WithProperty("error", openapi3.NewStringSchema())
	errSchema.Required = []string{"error"}

	c[nameResult] = openapi3.NewSchemaRef("", result)
	c[nameStored] = openapi3.NewSchemaRef("", stored)
	c[nameError] = openapi3.NewSchemaRef("", errSchema)

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "DevFolio API",
			Description: "Validate and store developer portfolio documents.",
			Version:     version,
		},
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas(c),
		},
	}

	idParam := &openapi3.ParameterRef{Value: openapi3.NewPathParameter("id").WithSchema(openapi3.NewStringSchema())}

	doc.Paths = openapi3.NewPaths(
		openapi3.WithPath("/validate", &openapi3.PathItem{
			Post: operation("validatePortfolio", "Validate a portfolio without storing it", portfolioRef,
				response(http.StatusOK, "The document is valid", c.ref(nameResult)),
				response(http.StatusUnprocessableEntity, "The document is invalid", c.ref(nameResult)),
				response(http.StatusBadRequest, "The body is not JSON", c.ref(nameError)),
			),
		}),
		openapi3.WithPath("/portfolios", &openapi3.PathItem{
			Get: operation("listPortfolios", "List stored portfolio IDs", nil,
				arrayResponse(http.StatusOK, "Stored IDs"),
			),
			Post: operation("createPortfolio", "Validate and store a portfolio under a new ID", portfolioRef,
				response(http.StatusCreated, "Stored", c.ref(nameStored)),
				response(http.StatusUnprocessableEntity, "The document is invalid", c.ref(nameStored)),
			),
		}),
		openapi3.WithPath("/portfolios/{id}", &openapi3.PathItem{
			Parameters: openapi3.Parameters{idParam},
			Get: operation("getPortfolio", "Fetch a stored portfolio", nil,
				response(http.StatusOK, "The stored document", portfolioRef),
				response(http.StatusNotFound, "No such portfolio", c.ref(nameError)),
			),
			Put: operation("putPortfolio", "Validate and store a portfolio", portfolioRef,
				response(http.StatusOK, "Stored", c.ref(nameStored)),
				response(http.StatusUnprocessableEntity, "The document is invalid", c.ref(nameStored)),
			),
			Delete: operation("deletePortfolio", "Delete a stored portfolio", nil,
				&responseEntry{status: http.StatusNoContent, ref: &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription("Deleted")}},
			),
		}),
		openapi3.WithPath("/schema.json", &openapi3.PathItem{
			Get: operation("getSchema", "The portfolio JSON Schema (draft-07)", nil,
				&responseEntry{status: http.StatusOK, ref: &openapi3.ResponseRef{Value: openapi3.NewResponse().
					WithDescription("JSON Schema").
					WithJSONSchema(openapi3.NewObjectSchema())}},
			),
		}),
		openapi3.WithPath("/health", &openapi3.PathItem{
			Get: operation("getHealth", "Liveness check", nil,
				&responseEntry{status: http.StatusOK, ref: &openapi3.ResponseRef{Value: openapi3.NewResponse().
					WithDescription("OK").
					WithJSONSchema(openapi3.NewObjectSchema().WithProperty("status", openapi3.NewStringSchema()))}},
			),
		}),
	)

	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
}

// YAML renders the document as YAML.
func YAML(doc *openapi3.T) ([]byte, error) {
	data, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode openapi document: %w", err)
	}
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to encode openapi document: %w", err)
	}
	return yaml.Marshal(tree)
}

type responseEntry struct {
	status int
	ref    *openapi3.ResponseRef
}

func response(status int, description string, schema *openapi3.SchemaRef) *responseEntry {
	return &responseEntry{
		status: status,
		ref: &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription(description).
			WithJSONSchemaRef(schema)},
	}
}

func arrayResponse(status int, description string) *responseEntry {
	return &responseEntry{
		status: status,
		ref: &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription(description).
			WithJSONSchema(openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema()))},
	}
}

// operation builds an operation; body, when set, is the required JSON request body.
func operation(id, summary string, body *openapi3.SchemaRef, responses ...*responseEntry) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = id
	op.Summary = summary
	if body != nil {
		op.RequestBody = &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithJSONSchemaRef(body)}
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(responses))
	for _, r := range responses {
		opts = append(opts, openapi3.WithStatus(r.status, r.ref))
	}
	op.Responses = openapi3.NewResponses(opts...)
	return op
}
