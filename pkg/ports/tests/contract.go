package tests

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/aretw0/devfolio/pkg/domain"
	"github.com/aretw0/devfolio/pkg/ports"
)

// DocumentSourceContractTest is a reusable test suite that verifies if an adapter complies with ports.DocumentSource.
// setupData maps each document ID the source was seeded with to its expected untyped content.
func DocumentSourceContractTest(t *testing.T, source ports.DocumentSource, setupData map[string]map[string]any) {
	t.Helper()

	t.Run("Get_Success", func(t *testing.T) {
		for id, expected := range setupData {
			got, err := source.Get(id)
			if err != nil {
				t.Fatalf("unexpected error getting document %s: %v", id, err)
			}
			doc, ok := got.(map[string]any)
			if !ok {
				t.Fatalf("document %s is %T, want map[string]any", id, got)
			}
			for key, want := range expected {
				if !reflect.DeepEqual(doc[key], want) {
					t.Errorf("document %s key %q = %#v, want %#v", id, key, doc[key], want)
				}
			}
		}
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		_, err := source.Get("non-existent-document")
		if !errors.Is(err, domain.ErrDocumentNotFound) {
			t.Errorf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("List", func(t *testing.T) {
		ids, err := source.List()
		if err != nil {
			t.Fatalf("unexpected error listing documents: %v", err)
		}
		if len(ids) != len(setupData) {
			t.Errorf("expected %d documents, got %d (%v)", len(setupData), len(ids), ids)
		}
		if !sort.StringsAreSorted(ids) {
			t.Errorf("List() = %v, want sorted", ids)
		}
		for id := range setupData {
			idx := sort.SearchStrings(ids, id)
			if idx == len(ids) || ids[idx] != id {
				t.Errorf("document %s missing from list", id)
			}
		}
	})
}
