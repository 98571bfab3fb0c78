package devhub

import "context"

// Document is a resolved markdown document.
type Document struct {
	// Path is the store-relative file the document was read from.
	Path string `json:"path"`

	// Metadata holds the decoded front-matter block. Never nil.
	Metadata map[string]any `json:"metadata"`

	// Body is the markdown text following the front-matter.
	Body string `json:"body"`
}

// Title returns the front-matter title, if it is a string.
func (d *Document) Title() string {
	if s, ok := d.Metadata["title"].(string); ok {
		return s
	}
	return ""
}

// ContentResolver locates documents by URL path segments.
type ContentResolver interface {
	// Resolve returns the document for the given path segments.
	// Each segment is percent-decoded before use. <segments>.md is tried
	// first, then <segments>/README.md.
	// Returns ENOTFOUND if neither exists.
	Resolve(ctx context.Context, segments []string) (*Document, error)
}

// DocumentParser splits raw markdown into front-matter metadata and body.
type DocumentParser interface {
	Parse(raw []byte) (*Document, error)
}

// Renderer converts markdown to HTML.
type Renderer interface {
	Render(markdown string) (string, error)
}
