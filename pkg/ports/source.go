package ports

import "context"

// DocumentSource reads raw, unvalidated portfolio documents from somewhere
// outside the process: a directory, a Loam repository, a fixture set.
type DocumentSource interface {
	// Get returns the untyped document with the given ID.
	// Returns domain.ErrDocumentNotFound if there is none.
	Get(id string) (any, error)

	// List returns the IDs of every document the source holds, sorted.
	List() ([]string, error)
}

// Watchable is implemented by sources that can report changes.
type Watchable interface {
	// Watch emits the ID of each document that changes until ctx is done.
	Watch(ctx context.Context) (<-chan string, error)
}
