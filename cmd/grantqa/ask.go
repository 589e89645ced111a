package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/grantqa"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	question := strings.Join(c.Question, " ")

	answer, err := deps.Asker.Ask(deps.Ctx, question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", grantqa.ErrorMessage(err))
		return err
	}

	if c.Markdown {
		md, err := deps.Converter.Convert(answer)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", grantqa.ErrorMessage(err))
			return err
		}
		answer = md
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
