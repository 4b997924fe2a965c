// Package jsonschema exports pkg/schema trees as JSON Schema documents so
// tools in other ecosystems can validate DevFolio files.
//
// The output targets draft-07 and is built on github.com/invopop/jsonschema,
// whose ordered property maps keep fields in declaration order.
package jsonschema
