// Package fs provides file-based storage for documentation content.
package fs

import (
	"context"
	iofs "io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/fwojciec/devhub"
)

// ReadmeName is the directory index file.
const ReadmeName = "README.md"

// Ensure Resolver implements devhub.ContentResolver at compile time.
var _ devhub.ContentResolver = (*Resolver)(nil)

// Resolver resolves URL path segments to markdown files in a file system.
// Every call reads the file system afresh.
type Resolver struct {
	fsys   iofs.FS
	parser devhub.DocumentParser
}

// NewResolver creates a Resolver reading from fsys, typically os.DirFS of
// the content directory.
func NewResolver(fsys iofs.FS, parser devhub.DocumentParser) *Resolver {
	return &Resolver{fsys: fsys, parser: parser}
}

// Resolve returns the document for segments, trying <segments>.md and then
// <segments>/README.md. An empty segment list resolves the root README.
func (r *Resolver) Resolve(ctx context.Context, segments []string) (*devhub.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	decoded, err := decodeSegments(segments)
	if err != nil {
		return nil, err
	}

	for _, name := range candidates(decoded) {
		// Any stat failure means the candidate cannot be served.
		info, err := iofs.Stat(r.fsys, name)
		if err != nil || info.IsDir() {
			continue
		}

		raw, err := iofs.ReadFile(r.fsys, name)
		if err != nil {
			return nil, err
		}

		doc, err := r.parser.Parse(raw)
		if err != nil {
			return nil, err
		}
		doc.Path = name
		return doc, nil
	}

	return nil, devhub.Errorf(devhub.ENOTFOUND, "document %q not found", path.Join(decoded...))
}

// decodeSegments percent-decodes each segment. A segment that cannot name
// a file inside the store is reported as not found.
func decodeSegments(segments []string) ([]string, error) {
	decoded := make([]string, 0, len(segments))
	for _, s := range segments {
		d, err := url.PathUnescape(s)
		if err != nil {
			return nil, devhub.Errorf(devhub.ENOTFOUND, "document %q not found", s)
		}
		if d == "" || d == "." || d == ".." || strings.ContainsAny(d, `/\`) {
			return nil, devhub.Errorf(devhub.ENOTFOUND, "document %q not found", s)
		}
		decoded = append(decoded, d)
	}
	return decoded, nil
}

func candidates(segments []string) []string {
	if len(segments) == 0 {
		return []string{ReadmeName}
	}
	joined := path.Join(segments...)
	return []string{joined + ".md", path.Join(joined, ReadmeName)}
}
