package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/devfolio"
	"github.com/aretw0/devfolio/pkg/adapters/memory"
	"github.com/aretw0/devfolio/pkg/domain"
	contract "github.com/aretw0/devfolio/pkg/ports/tests"
)

func TestSource_Contract(t *testing.T) {
	source := memory.NewSource(map[string]any{
		"jane": map[string]any{"basics": map[string]any{"name": "Jane"}},
		"john": map[string]any{"basics": map[string]any{"name": "John"}},
	})

	contract.DocumentSourceContractTest(t, source, map[string]map[string]any{
		"jane": {"basics": map[string]any{"name": "Jane"}},
		"john": {"basics": map[string]any{"name": "John"}},
	})
}

func TestSource_FromDocuments(t *testing.T) {
	source, err := memory.NewSourceFromDocuments(map[string]*domain.Document{
		"jane": devfolio.NewMinimal("Jane"),
	})
	require.NoError(t, err)

	contract.DocumentSourceContractTest(t, source, map[string]map[string]any{
		"jane": {"$schema": devfolio.SchemaURL, "basics": map[string]any{"name": "Jane"}},
	})
}

func TestSource_FromDocuments_MissingID(t *testing.T) {
	_, err := memory.NewSourceFromDocuments(map[string]*domain.Document{"": devfolio.NewMinimal("x")})
	assert.Error(t, err)
}

func TestSource_FromJSON(t *testing.T) {
	source := memory.NewSourceFromJSON(map[string]string{
		"ok":     `{"basics": {"name": "Jane"}}`,
		"broken": `{"basics":`,
	})

	ok, err := source.Get("ok")
	require.NoError(t, err)
	assert.True(t, devfolio.IsValid(ok))

	broken, err := source.Get("broken")
	require.NoError(t, err)
	assert.Equal(t, []string{"Unknown validation error"}, devfolio.Validate(broken).Errors)
}
