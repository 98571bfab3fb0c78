package main

import (
	"fmt"

	"github.com/fwojciec/devhub"
)

// Run executes the token command.
func (c *TokenCmd) Run(deps *Dependencies) error {
	token, err := deps.Tokens.Issue(devhub.Claims{
		Subject: c.Subject,
		Email:   c.Email,
		Role:    devhub.Role(c.Role),
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devhub.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, token)
	return nil
}
