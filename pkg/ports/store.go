package ports

import (
	"context"

	"github.com/aretw0/devfolio/pkg/domain"
)

// DocumentStore persists validated portfolio documents by ID.
// Stores keep the typed form; undeclared keys do not survive a round trip.
type DocumentStore interface {
	// Save creates or replaces the document stored under id.
	Save(ctx context.Context, id string, doc *domain.Document) error

	// Load retrieves the document stored under id.
	// Returns domain.ErrDocumentNotFound if there is none.
	Load(ctx context.Context, id string) (*domain.Document, error)

	// Delete removes the document. Deleting a missing document is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored documents, sorted.
	List(ctx context.Context) ([]string, error)
}
