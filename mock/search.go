package mock

import "github.com/fwojciec/devhub"

var _ devhub.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of devhub.Searcher.
type Searcher struct {
	SearchFn func(query string, limit int) []devhub.SearchItem
}

func (s *Searcher) Search(query string, limit int) []devhub.SearchItem {
	return s.SearchFn(query, limit)
}
