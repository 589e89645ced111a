package grantqa

import "context"

// Ensure Resolver implements Asker at compile time.
var _ Asker = (*Resolver)(nil)

// Resolver answers questions from the grant store, falling back to an LLM
// completion when the store has no match.
type Resolver struct {
	grants   GrantService
	fallback *Fallback
}

// NewResolver creates a new Resolver.
func NewResolver(grants GrantService, completer Completer) *Resolver {
	return &Resolver{
		grants:   grants,
		fallback: NewFallback(completer),
	}
}

// Ask answers a question about grant programs.
//
// Store failures are returned as ESTORE and the fallback is not consulted.
// An empty result set is not an error: the raw question is passed to the
// fallback and its answer returned.
func (r *Resolver) Ask(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", Errorf(EINVALID, "question required")
	}

	keyword := ExtractKeyword(question)

	grants, err := r.grants.FindGrants(ctx, GrantFilter{
		Keyword: &keyword,
		Limit:   SearchLimit,
	})
	if err != nil {
		return "", StoreError(err)
	}

	if len(grants) > 0 {
		return FormatGrants(grants), nil
	}

	return r.fallback.Complete(ctx, question).Answer(), nil
}
