package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/devhub"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	raw, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	inputs, err := decodeInputs(raw)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devhub.ErrorMessage(err))
		return err
	}

	pages, err := deps.Pages.SyncActivePages(deps.Ctx, inputs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devhub.ErrorMessage(err))
		for _, d := range devhub.ErrorDetails(err) {
			fmt.Fprintf(deps.Stderr, "  %s\n", d)
		}
		return err
	}

	active := 0
	for _, p := range pages {
		if p.Active {
			active++
		}
	}
	fmt.Fprintf(deps.Stdout, "Synced %d pages (%d active)\n", len(pages), active)
	return nil
}

// decodeInputs accepts either a bare array or a {"pages": [...]} object.
func decodeInputs(raw []byte) ([]devhub.ActivePageInput, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '{' {
		var req struct {
			Pages json.RawMessage `json:"pages"`
		}
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, devhub.Errorf(devhub.EINVALID, "file is not valid JSON")
		}
		raw = bytes.TrimSpace(req.Pages)
	}
	if len(raw) == 0 || raw[0] != '[' {
		return nil, devhub.Errorf(devhub.EINVALID, "pages must be an array")
	}

	var inputs []devhub.ActivePageInput
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return nil, &devhub.Error{
			Code:    devhub.EINVALID,
			Message: "pages must be an array of page objects",
			Details: []string{err.Error()},
		}
	}
	return inputs, nil
}
