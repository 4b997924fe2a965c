package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"

	"github.com/aretw0/devfolio/pkg/domain"
)

// Portfolio is the untyped content of a portfolio file as Loam decodes it.
type Portfolio = map[string]any

// Source adapts a Loam repository of portfolio files (JSON or YAML) to
// ports.DocumentSource. IDs are file paths without their extension.
type Source struct {
	Repo *loam.TypedRepository[Portfolio]
}

// New creates a new Loam source.
func New(repo *loam.TypedRepository[Portfolio]) *Source {
	return &Source{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository at dir and wraps it.
// Strict mode keeps numbers as json.Number in every format.
func Open(dir string) (*Source, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[Portfolio](repo)), nil
}

// Get returns the raw document stored under id.
func (s *Source) Get(id string) (any, error) {
	ctx := context.Background()

	doc, err := s.Repo.Get(ctx, id)
	if err != nil {
		// Loam does not expose a typed not-found error; fall back to the listing.
		if ids, listErr := s.List(); listErr == nil && !contains(ids, trimExtension(id)) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, id)
		}
		return nil, fmt.Errorf("loam get failed for %s: %w", id, err)
	}
	if doc.Data == nil {
		return Portfolio{}, nil
	}
	return doc.Data, nil
}

// List returns every portfolio ID in the repository, sorted.
func (s *Source) List() ([]string, error) {
	ctx := context.Background()
	docs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	ids := make([]string, 0, len(docs))

	for _, doc := range docs {
		id := trimExtension(doc.ID)

		if existingPath, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existingPath, doc.ID)
		}
		seen[id] = doc.ID
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Watch implements ports.Watchable.
func (s *Source) Watch(ctx context.Context) (<-chan string, error) {
	events, err := s.Repo.Watch(ctx, "**/*.{json,yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan string, 1)

	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				select {
				case ch <- trimExtension(evt.ID):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}

func contains(sorted []string, id string) bool {
	i := sort.SearchStrings(sorted, id)
	return i < len(sorted) && sorted[i] == id
}
