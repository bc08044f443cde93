// Package search implements the local side of the hybrid search: a fuzzy
// index over the document catalog and the natural-language query classifier.
package search

import (
	"strings"

	"github.com/learnhubhq/docsearch/internal/catalog"
	"github.com/learnhubhq/docsearch/internal/domain"
	"github.com/sahilm/fuzzy"
)

// DefaultLimit caps how many fuzzy matches a single query returns.
const DefaultLimit = 8

// Match pairs a catalog document with its fuzzy score.
type Match struct {
	Document domain.Document
	Score    int
}

// Index is an in-memory fuzzy index over a catalog. It tolerates near-miss
// spellings: "pyton fonctions" still finds the Python functions page.
type Index struct {
	docs     []domain.Document
	haystack []string
	limit    int
}

// NewIndex builds a fuzzy index over the catalog. A limit <= 0 uses
// DefaultLimit.
func NewIndex(c *catalog.Catalog, limit int) *Index {
	if limit <= 0 {
		limit = DefaultLimit
	}
	docs := c.Documents()
	haystack := make([]string, len(docs))
	for i, d := range docs {
		haystack[i] = strings.ToLower(d.Title + " " + d.Description + " " + string(d.Category))
	}
	return &Index{docs: docs, haystack: haystack, limit: limit}
}

// String implements fuzzy.Source.
func (ix *Index) String(i int) string {
	return ix.haystack[i]
}

// Len implements fuzzy.Source.
func (ix *Index) Len() int {
	return len(ix.haystack)
}

// Search returns the top matches for the query, best first, capped at the
// index limit. An empty query matches nothing.
func (ix *Index) Search(query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	found := fuzzy.FindFrom(query, ix)
	if len(found) > ix.limit {
		found = found[:ix.limit]
	}

	matches := make([]Match, len(found))
	for i, f := range found {
		matches[i] = Match{Document: ix.docs[f.Index], Score: f.Score}
	}
	return matches
}
