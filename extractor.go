package devhub

// ExtractResult holds the main content of an external HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML with navigation,
	// footers and other chrome removed.
	ContentHTML string
}

// Extractor pulls the main content out of a full HTML page.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
