package slog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/devhub"
)

// Ensure LoggingResolver implements devhub.ContentResolver.
var _ devhub.ContentResolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a ContentResolver with debug logging.
// Not-found lookups are logged at debug level like hits; other failures
// are logged as errors.
type LoggingResolver struct {
	next   devhub.ContentResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next devhub.ContentResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(ctx context.Context, segments []string) (doc *devhub.Document, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil && devhub.ErrorCode(err) != devhub.ENOTFOUND {
			level = slog.LevelError
		}
		var file string
		if doc != nil {
			file = doc.Path
		}
		r.logger.Log(ctx, level, "resolve",
			"path", "/"+strings.Join(segments, "/"),
			"file", file,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Resolve(ctx, segments)
}
