// Package trafilatura extracts the main content of imported pages with
// go-trafilatura, dropping navigation, comments and other boilerplate.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/devhub"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements devhub.Extractor at compile time.
var _ devhub.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura. Links and images are kept so imported
// pages stay navigable once rendered.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
			IncludeLinks:    true,
			IncludeImages:   true,
		},
	}
}

// Extract returns the title and main content of rawHTML.
// Returns EINVALID when the input is empty or has no main content.
func (e *Extractor) Extract(rawHTML string) (*devhub.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, devhub.Errorf(devhub.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, err
	}
	if result.ContentNode == nil {
		return nil, devhub.Errorf(devhub.EINVALID, "no main content found")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, err
	}

	return &devhub.ExtractResult{
		Title:       strings.TrimSpace(result.Metadata.Title),
		ContentHTML: buf.String(),
	}, nil
}
