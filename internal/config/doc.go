// Package config loads the devfolio configuration from a YAML file and
// DEVFOLIO_* environment variables.
package config
