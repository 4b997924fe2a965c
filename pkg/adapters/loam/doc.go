// Package loam reads portfolio files from a Loam repository.
package loam
