// Package search provides a web search hook for answer flows.
//
// Only a placeholder implementation exists today; wire a real search API
// (Google Custom Search, Bing, ...) behind the Searcher interface when one
// is chosen.
package search

import (
	"context"
	"fmt"
)

// Searcher runs a web search and returns a text summary of the results.
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// Stub is a placeholder Searcher that returns a canned result string.
type Stub struct{}

// NewStub creates a placeholder searcher.
func NewStub() *Stub {
	return &Stub{}
}

// Search returns a canned result for the query.
func (s *Stub) Search(ctx context.Context, query string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("Search results for: %s\n\n[no search backend configured]", query), nil
}
