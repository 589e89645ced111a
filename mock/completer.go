package mock

import (
	"context"

	"github.com/fwojciec/grantqa"
)

var _ grantqa.Completer = (*Completer)(nil)

// Completer is a mock implementation of grantqa.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, question string) (string, error)
}

func (c *Completer) Complete(ctx context.Context, question string) (string, error) {
	return c.CompleteFn(ctx, question)
}
