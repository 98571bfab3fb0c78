package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/devhub"
)

// Ensure LoggingSearcher implements devhub.Searcher.
var _ devhub.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   devhub.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next devhub.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the query and hit count.
func (s *LoggingSearcher) Search(query string, limit int) (results []devhub.SearchItem) {
	defer func(begin time.Time) {
		s.logger.Debug("search",
			"query", query,
			"limit", limit,
			"count", len(results),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Search(query, limit)
}
