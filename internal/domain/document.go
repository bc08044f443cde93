package domain

// Category identifies the documentation track a document belongs to.
type Category string

const (
	CategoryPython     Category = "python"
	CategoryJavaScript Category = "javascript"
	CategoryHTML       Category = "html"
	CategoryCSS        Category = "css"
	CategoryCPP        Category = "cpp"
	CategoryJava       Category = "java"
	CategoryAIML       Category = "ai-ml"
	CategoryGeneral    Category = "general"
)

// IsValid checks if the category is one of the known tracks.
func (c Category) IsValid() bool {
	switch c {
	case CategoryPython, CategoryJavaScript, CategoryHTML, CategoryCSS,
		CategoryCPP, CategoryJava, CategoryAIML, CategoryGeneral:
		return true
	}
	return false
}

// Icon describes how a catalog entry is rendered in result lists.
type Icon string

const (
	IconDoc   Icon = "doc"
	IconPath  Icon = "path"
	IconGuide Icon = "guide"
)

// IsValid checks if the icon kind is known.
func (i Icon) IsValid() bool {
	switch i {
	case IconDoc, IconPath, IconGuide:
		return true
	}
	return false
}

// Document is an immutable catalog entry for a documentation page.
// Documents are loaded once at startup and never mutated.
type Document struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Category    Category `json:"category" yaml:"category"`
	Path        string   `json:"path" yaml:"path"`
	Icon        Icon     `json:"icon" yaml:"icon"`
}

// Validate checks that a document carries every required attribute.
func (d Document) Validate() error {
	if d.Title == "" || d.Path == "" {
		return ErrMissingRequiredField
	}
	if !d.Category.IsValid() {
		return ErrInvalidCategory
	}
	if !d.Icon.IsValid() {
		return ErrInvalidIcon
	}
	return nil
}
