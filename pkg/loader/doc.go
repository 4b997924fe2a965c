// Package loader reads portfolio documents from JSON or YAML files and stdin.
package loader
