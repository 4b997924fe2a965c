// Package openapi describes the devfolio HTTP API as an OpenAPI 3 document.
// The portfolio component schema is derived from the JSON Schema export, so
// the API description cannot drift from the validator.
package openapi
