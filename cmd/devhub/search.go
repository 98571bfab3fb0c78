package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/devhub"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.TrimSpace(c.Query)
	if utf8.RuneCountInString(query) < devhub.MinQueryLength {
		fmt.Fprintf(deps.Stderr, "error: query must be at least %d characters\n", devhub.MinQueryLength)
		return devhub.Errorf(devhub.EINVALID, "query too short")
	}

	results := deps.Searcher.Search(query, c.Limit)
	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q\n", query)
		return nil
	}

	for _, item := range results {
		fmt.Fprintf(deps.Stdout, "%s  %s  [%s]\n", item.Path, item.Title, item.Category)
	}
	return nil
}
