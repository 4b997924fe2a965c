// Package catalog holds the DevFolio field rules: one schema constructor per
// record type, and the composed document schema built from them.
//
// Every rule is plain data built from package schema; there is no per-type
// validation code. Enum vocabularies come from package domain so the typed
// model and the rules share one source.
package catalog
