// Package readability extracts imported page content with go-readability.
// It suits article-shaped pages where trafilatura keeps too little.
package readability

import (
	"strings"

	"github.com/fwojciec/devhub"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements devhub.Extractor at compile time.
var _ devhub.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article title and content of rawHTML.
// Returns EINVALID when the input is empty or no article is found.
func (e *Extractor) Extract(rawHTML string) (*devhub.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, devhub.Errorf(devhub.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, devhub.Errorf(devhub.EINVALID, "no article content found")
	}

	return &devhub.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
