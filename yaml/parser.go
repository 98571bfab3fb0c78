// Package yaml parses markdown documents with a YAML front-matter block.
package yaml

import (
	"bytes"

	"github.com/fwojciec/devhub"
	"gopkg.in/yaml.v3"
)

// Ensure Parser implements devhub.DocumentParser at compile time.
var _ devhub.DocumentParser = (*Parser)(nil)

const fence = "---"

// Parser splits markdown into front-matter metadata and body.
//
// The front-matter is a block at the very top of the file opened and closed
// by a line holding only "---". A document without an opening fence, or
// whose opening fence is never closed, has no metadata and its whole text
// is the body.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse splits raw into metadata and body.
// Returns EINVALID if the front-matter is not a YAML mapping.
func (p *Parser) Parse(raw []byte) (*devhub.Document, error) {
	raw = bytes.TrimPrefix(raw, []byte("\ufeff"))
	doc := &devhub.Document{Metadata: map[string]any{}}

	header, body, ok := split(raw)
	if !ok {
		doc.Body = string(raw)
		return doc, nil
	}

	if len(bytes.TrimSpace(header)) > 0 {
		if err := yaml.Unmarshal(header, &doc.Metadata); err != nil {
			return nil, devhub.Errorf(devhub.EINVALID, "invalid front-matter: %v", err)
		}
		if doc.Metadata == nil {
			doc.Metadata = map[string]any{}
		}
	}
	doc.Body = string(body)
	return doc, nil
}

// split returns the front-matter and the body of raw.
// ok is false when raw has no complete front-matter block.
func split(raw []byte) (header, body []byte, ok bool) {
	first, rest, _ := cutLine(raw)
	if !isFence(first) {
		return nil, nil, false
	}

	start := rest
	for len(rest) > 0 {
		line, next, _ := cutLine(rest)
		if isFence(line) {
			header = start[:len(start)-len(rest)]
			return header, next, true
		}
		rest = next
	}
	return nil, nil, false
}

// cutLine returns the first line of b without its terminator and the
// remainder after it.
func cutLine(b []byte) (line, rest []byte, found bool) {
	line, rest, found = bytes.Cut(b, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r")), rest, found
}

func isFence(line []byte) bool {
	return string(bytes.TrimRight(line, " \t")) == fence
}
