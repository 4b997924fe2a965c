package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/aretw0/devfolio/pkg/domain"
	"github.com/aretw0/devfolio/pkg/ports"
)

// Mask replaces every masked value.
const Mask = "***"

// DefaultPIIPatterns match the contact fields of a portfolio: basics email
// and phone, and the contact block of references.
var DefaultPIIPatterns = []string{`^email$`, `^phone$`}

type piiMiddleware struct {
	next     ports.DocumentStore
	patterns []*regexp.Regexp
}

// NewPIIMiddleware creates a middleware that masks, on save, the string values
// of every key matching one of the patterns, at any depth.
// It panics if a pattern does not compile.
func NewPIIMiddleware(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.DocumentStore) ports.DocumentStore {
		return &piiMiddleware{next: next, patterns: patterns}
	}
}

func (m *piiMiddleware) Save(ctx context.Context, id string, doc *domain.Document) error {
	masked, err := m.mask(doc)
	if err != nil {
		return err
	}
	return m.next.Save(ctx, id, masked)
}

func (m *piiMiddleware) Load(ctx context.Context, id string) (*domain.Document, error) {
	return m.next.Load(ctx, id)
}

func (m *piiMiddleware) Delete(ctx context.Context, id string) error {
	return m.next.Delete(ctx, id)
}

func (m *piiMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

// mask works on a copy so the caller's document is left intact.
func (m *piiMiddleware) mask(doc *domain.Document) (*domain.Document, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	maskValue(tree, m.patterns)

	data, err = json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal masked document: %w", err)
	}
	var out domain.Document
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal masked document: %w", err)
	}
	return &out, nil
}

func maskValue(v any, patterns []*regexp.Regexp) {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			if _, ok := child.(string); ok && matchAny(k, patterns) {
				val[k] = Mask
				continue
			}
			maskValue(child, patterns)
		}
	case []any:
		for _, child := range val {
			maskValue(child, patterns)
		}
	}
}

func matchAny(key string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(key) {
			return true
		}
	}
	return false
}
