package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a portfolio file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Stdin is the path that reads from standard input.
const Stdin = "-"

// ErrTrailingData is returned when a JSON payload holds more than one value.
var ErrTrailingData = errors.New("trailing data after document")

// FormatOf guesses the format from a file extension. Anything that is not
// YAML is read as JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and decodes a portfolio file into an untyped tree.
// The path "-" reads JSON from stdin.
func Load(path string) (any, error) {
	if path == Stdin {
		return Decode(os.Stdin, FormatJSON)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	out, err := Decode(f, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// Decode reads one document from r.
func Decode(r io.Reader, format Format) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if format == FormatYAML {
		return YAML(data)
	}
	return JSON(data)
}

// JSON decodes a single JSON value. Numbers stay json.Number so integers
// keep their precision.
func JSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode json: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("failed to decode json: %w", ErrTrailingData)
	}
	return out, nil
}

// YAML decodes a single YAML document into the same shapes JSON produces.
// Timestamps come back as the strings they were written as.
func YAML(data []byte) (any, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to decode yaml: %w", err)
	}
	if node.Kind == 0 {
		return nil, nil
	}
	var out any
	if err := node.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode yaml: %w", err)
	}
	return normalize(out), nil
}

func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, sub := range val {
			val[k] = normalize(sub)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, sub := range val {
			out[fmt.Sprint(k)] = normalize(sub)
		}
		return out
	case []any:
		for i, sub := range val {
			val[i] = normalize(sub)
		}
		return val
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format(time.DateOnly)
		}
		return val.UTC().Format(time.RFC3339Nano)
	default:
		return v
	}
}
