// Package goquery extracts imported page content with a CSS selector, for
// sources whose layout is known and where heuristic extraction misfires.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/devhub"
)

// Ensure Extractor implements devhub.Extractor at compile time.
var _ devhub.Extractor = (*Extractor)(nil)

// titleSelectors are tried in order to find a page title.
var titleSelectors = []string{`meta[property="og:title"]`, "title", "h1"}

// Extractor returns the first element matching a CSS selector.
type Extractor struct {
	selector string
}

// NewExtractor creates an Extractor for the given CSS selector.
func NewExtractor(selector string) *Extractor {
	return &Extractor{selector: selector}
}

// Extract returns the outer HTML of the first selector match.
// Returns EINVALID if the input is empty or nothing matches.
func (e *Extractor) Extract(rawHTML string) (*devhub.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, devhub.Errorf(devhub.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, devhub.Errorf(devhub.EINVALID, "failed to parse HTML: %v", err)
	}

	content := doc.Find(e.selector).First()
	if content.Length() == 0 {
		return nil, devhub.Errorf(devhub.EINVALID, "no element matches %q", e.selector)
	}
	content.Find("script, style, noscript").Remove()

	contentHTML, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, err
	}

	return &devhub.ExtractResult{
		Title:       findTitle(doc),
		ContentHTML: contentHTML,
	}, nil
}

func findTitle(doc *goquery.Document) string {
	for _, sel := range titleSelectors {
		s := doc.Find(sel).First()
		if s.Length() == 0 {
			continue
		}
		title := s.Text()
		if v, ok := s.Attr("content"); ok {
			title = v
		}
		if title = strings.TrimSpace(title); title != "" {
			return title
		}
	}
	return ""
}
