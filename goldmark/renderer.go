// Package goldmark renders markdown documents to HTML using the goldmark
// library with GitHub Flavored Markdown extensions.
package goldmark

import (
	"bytes"

	"github.com/fwojciec/devhub"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Ensure Renderer implements devhub.Renderer at compile time.
var _ devhub.Renderer = (*Renderer)(nil)

// Renderer converts markdown to HTML.
// Raw HTML in the source is escaped rather than passed through.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with GFM tables, strikethrough, task lists
// and autolinks, and auto-generated heading IDs.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithXHTML()),
		),
	}
}

// Render converts markdown to an HTML fragment.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
