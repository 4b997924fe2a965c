// Package memory provides an in-memory portfolio source, mostly for tests and embedding.
package memory
