package main

import (
	"fmt"

	"github.com/fwojciec/devhub"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return devhub.Errorf(devhub.EINVALID, "use --force to confirm deletion")
	}

	pages, err := deps.Pages.DeleteActivePages(deps.Ctx, c.IDs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devhub.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted; %d pages remain\n", len(pages))
	return nil
}
