package grantqa

import "context"

// Asker answers natural language questions about grant programs.
type Asker interface {
	// Ask answers a question. Returns ESTORE if the grant store cannot be
	// queried. Completion failures are never returned as errors.
	Ask(ctx context.Context, question string) (string, error)
}
