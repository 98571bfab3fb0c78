package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/devhub"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	pages, err := deps.Pages.FindActivePages(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devhub.ErrorMessage(err))
		return err
	}

	if c.JSON {
		lastUpdated, err := deps.Pages.LastUpdated(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", devhub.ErrorMessage(err))
			return err
		}
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Pages       []*devhub.ActivePage `json:"pages"`
			LastUpdated time.Time            `json:"lastUpdated"`
		}{pages, lastUpdated})
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages found. Use 'devhub sync' to register some.")
		return nil
	}

	printPages(deps, pages)
	return nil
}

func printPages(deps *Dependencies, pages []*devhub.ActivePage) {
	for _, p := range pages {
		state := "active"
		if !p.Active {
			state = "inactive"
		}
		fmt.Fprintf(deps.Stdout, "%s  %-8s  %s  %s\n", p.ExternalID, state, p.Title, p.Slug)
	}
}
