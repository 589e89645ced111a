package mock

import (
	"context"

	"github.com/fwojciec/grantqa"
)

var _ grantqa.Asker = (*Asker)(nil)

// Asker is a mock implementation of grantqa.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	return a.AskFn(ctx, question)
}
