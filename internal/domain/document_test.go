package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_Validate(t *testing.T) {
	doc := Document{
		Title:       "Python Functions",
		Description: "Defining functions.",
		Category:    CategoryPython,
		Path:        "/docs/python/functions",
		Icon:        IconDoc,
	}
	assert.NoError(t, doc.Validate())
}

func TestDocument_Validate_MissingTitle(t *testing.T) {
	doc := Document{
		Path:     "/docs/python/functions",
		Category: CategoryPython,
		Icon:     IconDoc,
	}
	assert.ErrorIs(t, doc.Validate(), ErrMissingRequiredField)
}

func TestDocument_Validate_UnknownCategory(t *testing.T) {
	doc := Document{
		Title:    "Mystery",
		Path:     "/docs/mystery",
		Category: Category("rust"),
		Icon:     IconDoc,
	}
	assert.ErrorIs(t, doc.Validate(), ErrInvalidCategory)
}

func TestDocument_Validate_UnknownIcon(t *testing.T) {
	doc := Document{
		Title:    "Mystery",
		Path:     "/docs/mystery",
		Category: CategoryGeneral,
		Icon:     Icon("sparkle"),
	}
	assert.ErrorIs(t, doc.Validate(), ErrInvalidIcon)
}
