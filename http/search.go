package http

import (
	"net/http"
	"strconv"

	"github.com/fwojciec/devhub"
)

// MaxSearchLimit caps the limit query parameter.
const MaxSearchLimit = 50

// SearchResponse is the body of GET /api/search.
type SearchResponse struct {
	Query   string              `json:"query"`
	Results []devhub.SearchItem `json:"results"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	limit := devhub.DefaultSearchLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.Error(w, r, devhub.Errorf(devhub.EINVALID, "limit must be a positive integer"))
			return
		}
		limit = min(n, MaxSearchLimit)
	}

	results := s.Searcher.Search(q, limit)
	if results == nil {
		results = []devhub.SearchItem{}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Query: q, Results: results})
}
