package main

import (
	"fmt"

	"github.com/fwojciec/devhub/importer"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	if c.Concurrency > 0 {
		deps.Importer.Concurrency = c.Concurrency
	}

	progress := func(event importer.ProgressEvent) {
		switch event.Type {
		case importer.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Importing %d pages\n", event.Total)
		case importer.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case importer.ProgressCompleted, importer.ProgressFinished:
			// Summary printed after import completes
		}
	}

	result, err := deps.Importer.Import(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error importing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d pages (%s), skipped %d, failed %d\n",
		result.Saved, importer.FormatBytes(result.Bytes), result.Skipped, result.Failed)
	return nil
}
