package devhub

// MinQueryLength is the shortest query, in characters, that produces results.
const MinQueryLength = 2

// DefaultSearchLimit is the result cap applied when the caller passes no limit.
const DefaultSearchLimit = 10

// SearchItem is a searchable document in the catalog.
// Path is the document identity.
type SearchItem struct {
	Title    string `json:"title"`
	Path     string `json:"path"`
	Content  string `json:"content"`
	Category string `json:"category,omitempty"`
}

// Searcher answers ranked fuzzy queries over a fixed catalog.
type Searcher interface {
	// Search returns at most limit items ranked by relevance to query.
	// Queries shorter than MinQueryLength return an empty result.
	// A limit of zero or less means DefaultSearchLimit.
	Search(query string, limit int) []SearchItem
}
