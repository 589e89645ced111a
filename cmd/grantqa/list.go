package main

import (
	"fmt"

	"github.com/fwojciec/grantqa"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := grantqa.GrantFilter{Limit: c.Limit}
	if c.Category != "" {
		filter.Category = &c.Category
	}

	grants, err := deps.Grants.FindGrants(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", grantqa.ErrorMessage(err))
		return err
	}

	if len(grants) == 0 {
		fmt.Fprintln(deps.Stdout, "No grants found. Use 'grantqa import' to load some.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, grantqa.FormatGrants(grants))
	return nil
}
