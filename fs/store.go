package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/devhub"
	"gopkg.in/yaml.v3"
)

// Ensure FileStore implements devhub.ContentStore at compile time.
var _ devhub.ContentStore = (*FileStore)(nil)

// FileStore implements devhub.ContentStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved into place on Commit.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the content directory, name is the section directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes page to the temporary directory as <slug>.md.
func (s *FileStore) Save(ctx context.Context, page *devhub.ImportedPage) error {
	if err := page.Validate(); err != nil {
		return err
	}

	relPath, err := SlugToPath(page.Slug)
	if err != nil {
		return err
	}

	content, err := FormatPage(page)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// Commit replaces the section directory with everything saved so far.
func (s *FileStore) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards everything saved since the last Commit.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// SlugToPath converts a page slug to a relative file path.
// Example: runbooks/deploy → runbooks/deploy.md
func SlugToPath(slug string) (string, error) {
	parts := strings.Split(strings.Trim(slug, "/"), "/")
	for _, p := range parts {
		if p == "" || p == "." || p == ".." || strings.ContainsRune(p, '\\') {
			return "", devhub.Errorf(devhub.EINVALID, "invalid slug %q", slug)
		}
	}
	return filepath.Join(parts...) + ".md", nil
}

type frontMatter struct {
	Title    string `yaml:"title,omitempty"`
	Source   string `yaml:"source"`
	Category string `yaml:"category,omitempty"`
	Hash     string `yaml:"hash,omitempty"`
	Imported string `yaml:"imported"`
}

// FormatPage formats a page with YAML front-matter.
func FormatPage(page *devhub.ImportedPage) (string, error) {
	importedAt := page.ImportedAt
	if importedAt.IsZero() {
		importedAt = time.Now()
	}

	header, err := yaml.Marshal(frontMatter{
		Title:    page.Title,
		Source:   page.SourceURL,
		Category: page.Category,
		Hash:     page.ContentHash,
		Imported: importedAt.UTC().Format("2006-01-02"),
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(page.Content)
	return b.String(), nil
}
