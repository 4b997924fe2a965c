package memory

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/aretw0/devfolio/pkg/domain"
)

// Source implements ports.DocumentSource using an in-memory map.
type Source struct {
	docs map[string]any
}

// NewSource creates a Source holding the given raw documents.
func NewSource(docs map[string]any) *Source {
	copied := make(map[string]any, len(docs))
	for k, v := range docs {
		copied[k] = v
	}
	return &Source{docs: copied}
}

// NewSourceFromJSON creates a Source from raw JSON payloads.
// Payloads are kept undecoded; the validator reads them as JSON input.
func NewSourceFromJSON(data map[string]string) *Source {
	docs := make(map[string]any, len(data))
	for k, v := range data {
		docs[k] = json.RawMessage(v)
	}
	return &Source{docs: docs}
}

// NewSourceFromDocuments creates a Source from typed documents.
func NewSourceFromDocuments(docs map[string]*domain.Document) (*Source, error) {
	data := make(map[string]any, len(docs))
	for id, doc := range docs {
		if id == "" {
			return nil, fmt.Errorf("document missing ID")
		}
		bytes, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal document %s: %w", id, err)
		}
		var raw map[string]any
		if err := json.Unmarshal(bytes, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode document %s: %w", id, err)
		}
		data[id] = raw
	}
	return &Source{docs: data}, nil
}

// Get retrieves the raw document by ID.
func (s *Source) Get(id string) (any, error) {
	doc, ok := s.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, id)
	}
	return doc, nil
}

// List returns all document IDs.
func (s *Source) List() ([]string, error) {
	keys := make([]string, 0, len(s.docs))
	for k := range s.docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
