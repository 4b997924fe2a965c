package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/devfolio/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunDocumentStoreContract runs a suite of tests to verify that a DocumentStore
// implementation adheres to the defined interface contract.
func RunDocumentStoreContract(t *testing.T, store DocumentStore) {
	ctx := context.Background()
	id := "contract-" + time.Now().Format("20060102150405")

	teamSize := 4.0
	remote := true
	doc := &domain.Document{
		Schema: domain.DefaultSchemaURL,
		Basics: &domain.Basics{Name: "Jane Doe", Email: "jane@example.com"},
		Work: []domain.Work{{
			Name:      "Acme",
			Position:  "Engineer",
			StartDate: "2020-01-01",
			Type:      "full-time",
			Remote:    &remote,
			TeamSize:  &teamSize,
		}},
		Meta: &domain.Meta{
			Visibility: domain.VisibilityPublic,
			Custom:     map[string]any{"theme": "dark"},
		},
	}

	t.Run("Save and Load", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, id, doc), "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, doc.Basics, loaded.Basics)
		require.Len(t, loaded.Work, 1)
		assert.Equal(t, "Acme", loaded.Work[0].Name)
		require.NotNil(t, loaded.Work[0].TeamSize)
		assert.Equal(t, 4.0, *loaded.Work[0].TeamSize)
		assert.Equal(t, domain.VisibilityPublic, loaded.Meta.Visibility)
		assert.Equal(t, "dark", loaded.Meta.Custom["theme"])
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		updated := *doc
		updated.Basics = &domain.Basics{Name: "Jane Q. Doe"}
		require.NoError(t, store.Save(ctx, id, &updated))

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Jane Q. Doe", loaded.Basics.Name)
	})

	t.Run("Load Is Isolated", func(t *testing.T) {
		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		loaded.Basics.Name = "mutated"

		again, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", again.Basics.Name)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+id)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, id, doc))
		require.NoError(t, store.Delete(ctx, id), "Delete should not return error")

		_, err := store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound, "Load after Delete should return ErrDocumentNotFound")

		assert.NoError(t, store.Delete(ctx, id), "Deleting twice should not fail")
	})

	t.Run("List", func(t *testing.T) {
		id1 := id + "-b"
		id2 := id + "-a"
		require.NoError(t, store.Save(ctx, id1, doc))
		require.NoError(t, store.Save(ctx, id2, doc))
		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
		assert.IsNonDecreasing(t, ids)
	})
}
