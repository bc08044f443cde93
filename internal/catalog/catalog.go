// Package catalog holds the read-only documentation catalog the search
// stack operates on. The catalog is constructed once, injected where it is
// needed, and never mutated afterwards.
package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/learnhubhq/docsearch/internal/domain"
	"gopkg.in/yaml.v3"
)

// Catalog is an immutable collection of searchable documents.
type Catalog struct {
	docs []domain.Document
}

// New builds a catalog from the given documents, validating each entry.
func New(docs []domain.Document) (*Catalog, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one document")
	}
	copied := make([]domain.Document, len(docs))
	for i, d := range docs {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("invalid document %q: %w", d.Path, err)
		}
		copied[i] = d
	}
	return &Catalog{docs: copied}, nil
}

type catalogFile struct {
	Documents []domain.Document `yaml:"documents"`
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return New(file.Documents)
}

// Documents returns a copy of the catalog entries.
func (c *Catalog) Documents() []domain.Document {
	out := make([]domain.Document, len(c.docs))
	copy(out, c.docs)
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.docs)
}

// KnowledgeBase renders the full catalog as the textual context sent to the
// AI gateway: one section per category with title/path headers and the
// document summaries.
func (c *Catalog) KnowledgeBase() string {
	byCategory := make(map[domain.Category][]domain.Document)
	for _, d := range c.docs {
		byCategory[d.Category] = append(byCategory[d.Category], d)
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, string(cat))
	}
	sort.Strings(categories)

	var b strings.Builder
	b.WriteString("LearnHub documentation catalog:\n")
	for _, cat := range categories {
		fmt.Fprintf(&b, "\n## %s\n", cat)
		for _, d := range byCategory[domain.Category(cat)] {
			fmt.Fprintf(&b, "- %s (%s): %s\n", d.Title, d.Path, d.Description)
		}
	}
	return b.String()
}
