package testutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/aretw0/devfolio/pkg/schema"
	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/stretchr/testify/require"
)

// SetupTestRepo creates a temporary directory and initializes a Loam repository in it.
// It returns the absolute path to the temp dir and the initialized repository.
// It fails the test immediately on error.
func SetupTestRepo(t *testing.T, opts ...loam.Option) (string, core.Repository) {
	t.Helper()

	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	repo, err := loam.Init(absPath, opts...)
	require.NoError(t, err, "Failed to init loam repo")

	return absPath, repo
}

// RepoRoot returns the module root, located relative to this source file.
func RepoRoot() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..")
}

// SamplePath is the path of the bundled sample portfolio.
func SamplePath() string {
	return filepath.Join(RepoRoot(), "examples", "sample-devfolio.json")
}

// LoadSample decodes the bundled sample portfolio into an untyped map.
// Numbers decode as float64, as encoding/json does by default.
func LoadSample(t testing.TB) map[string]any {
	t.Helper()

	data, err := os.ReadFile(SamplePath())
	require.NoError(t, err, "Failed to read sample portfolio")

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out), "Failed to decode sample portfolio")
	return out
}

// Minimal synthesizes the smallest value accepted by t: objects carry only
// their required fields, arrays are empty, strings satisfy their format and
// length constraints, numbers sit on their lower bound.
func Minimal(t schema.Type) any {
	switch typ := t.(type) {
	case *schema.StringType:
		return minimalString(typ)
	case *schema.NumberType:
		if typ.Minimum != nil {
			return *typ.Minimum
		}
		if typ.Maximum != nil && *typ.Maximum < 0 {
			return *typ.Maximum
		}
		return 0.0
	case *schema.BoolType:
		return true
	case *schema.EnumType:
		return typ.Values[0]
	case *schema.SliceType:
		return []any{}
	case *schema.RecordType:
		return map[string]any{}
	case *schema.ObjectType:
		out := make(map[string]any)
		for _, f := range typ.Fields {
			if f.Required {
				out[f.Name] = Minimal(f.Type)
			}
		}
		return out
	default:
		return nil
	}
}

func minimalString(t *schema.StringType) string {
	switch {
	case t.Pattern != nil && t.Pattern.MatchString("2024-01-15"):
		return "2024-01-15"
	case t.Format == schema.FormatEmail:
		return "jane@example.com"
	case t.Format == schema.FormatURL:
		return "https://example.com"
	case t.Format == schema.FormatDateTime:
		return "2024-01-15T10:00:00Z"
	case t.Length != nil:
		return strings.Repeat("x", *t.Length)
	case t.MinLength != nil:
		return strings.Repeat("x", *t.MinLength)
	}
	return ""
}
