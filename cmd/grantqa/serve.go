package main

import (
	"fmt"

	granthttp "github.com/fwojciec/grantqa/http"
)

// Validate rejects a rate limit that could never admit a request.
func (c *ServeCmd) Validate() error {
	if c.Rate > 0 && c.Burst < 1 {
		return fmt.Errorf("--burst must be at least 1 when --rate is set")
	}
	return nil
}

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	opts := []granthttp.Option{
		granthttp.WithAddr(c.Addr),
		granthttp.WithLogger(deps.Logger),
	}
	if c.Rate > 0 {
		opts = append(opts, granthttp.WithRateLimit(c.Rate, c.Burst))
	}

	return granthttp.NewServer(deps.Asker, opts...).Run(deps.Ctx)
}
