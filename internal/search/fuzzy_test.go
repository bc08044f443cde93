package search

import (
	"fmt"
	"testing"

	"github.com/learnhubhq/docsearch/internal/catalog"
	"github.com/learnhubhq/docsearch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_ExactTitleWord(t *testing.T) {
	ix := NewIndex(catalog.Default(), 0)

	matches := ix.Search("python")
	require.NotEmpty(t, matches)
	assert.Equal(t, domain.CategoryPython, matches[0].Document.Category)
}

func TestIndex_NearMissSpelling(t *testing.T) {
	ix := NewIndex(catalog.Default(), 0)

	matches := ix.Search("pyton variables")
	require.NotEmpty(t, matches)
	assert.Equal(t, "Python Variables & Data Types", matches[0].Document.Title)
}

func TestIndex_LimitCapsResults(t *testing.T) {
	docs := make([]domain.Document, 20)
	for i := range docs {
		docs[i] = domain.Document{
			Title:       fmt.Sprintf("Guide %d", i),
			Description: "a guide",
			Category:    domain.CategoryGeneral,
			Path:        fmt.Sprintf("/docs/guide-%d", i),
			Icon:        domain.IconDoc,
		}
	}
	c, err := catalog.New(docs)
	require.NoError(t, err)

	ix := NewIndex(c, 0)
	matches := ix.Search("guide")
	assert.Len(t, matches, DefaultLimit)
}

func TestIndex_EmptyQuery(t *testing.T) {
	ix := NewIndex(catalog.Default(), 0)

	assert.Empty(t, ix.Search(""))
	assert.Empty(t, ix.Search("   "))
}

func TestIndex_ScoresDescend(t *testing.T) {
	ix := NewIndex(catalog.Default(), 0)

	matches := ix.Search("javascript functions")
	require.NotEmpty(t, matches)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
}
