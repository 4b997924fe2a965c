// Package schema provides a data-driven validator for untyped, JSON-like values.
//
// A schema is a tree of Type nodes: strings (with length, pattern and format
// constraints), numbers (with inclusive bounds), booleans, enums, arrays,
// objects with ordered fields, records and an opaque "any". The same tree is
// interpreted by one generic recursive validator and can be walked by
// exporters (see package jsonschema).
//
// Basic usage:
//
//	work := schema.Object(
//	    schema.Required("name", schema.String()),
//	    schema.Required("startDate", schema.Date()),
//	    schema.Optional("url", schema.URL()),
//	    schema.Optional("teamSize", schema.Number().Min(1)),
//	)
//
//	res := schema.Check(work, map[string]any{"name": "Acme"})
//	for _, msg := range res.Messages() {
//	    fmt.Println(msg) // startDate: Required
//	}
//
// Validation never stops at the first failure: every violation of a pass is
// collected, in traversal order, as a Violation carrying its Path, Kind and
// message. Parse wraps Check and returns a *ValidationError instead.
//
// Absent fields and null fields are different things. An absent required
// field is reported as "Required"; a null value is a type mismatch.
//
// Unknown object keys are preserved by default (Passthrough). WithUnknownKeys
// switches a pass to Strip or Reject.
//
// This package has no dependencies beyond the Go standard library.
package schema
