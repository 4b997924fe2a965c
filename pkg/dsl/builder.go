package dsl

import (
	"fmt"

	"github.com/aretw0/devfolio/pkg/adapters/memory"
)

// Builder manages a set of portfolios keyed by ID.
type Builder struct {
	portfolios map[string]*PortfolioBuilder
}

// New creates a new portfolio set builder.
func New() *Builder {
	return &Builder{
		portfolios: make(map[string]*PortfolioBuilder),
	}
}

// Add starts a portfolio under id.
// If the portfolio already exists, it returns the existing builder.
func (b *Builder) Add(id string) *PortfolioBuilder {
	if pb, ok := b.portfolios[id]; ok {
		return pb
	}
	pb := Portfolio()
	b.portfolios[id] = pb
	return pb
}

// Build compiles the set into an in-memory document source.
func (b *Builder) Build() (*memory.Source, error) {
	docs := make(map[string]any, len(b.portfolios))
	for id, pb := range b.portfolios {
		if id == "" {
			return nil, fmt.Errorf("failed to build source: empty portfolio ID")
		}
		docs[id] = pb.Build()
	}
	return memory.NewSource(docs), nil
}
