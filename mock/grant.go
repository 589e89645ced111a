package mock

import (
	"context"

	"github.com/fwojciec/grantqa"
)

var _ grantqa.GrantService = (*GrantService)(nil)

// GrantService is a mock implementation of grantqa.GrantService.
type GrantService struct {
	FindGrantsFn  func(ctx context.Context, filter grantqa.GrantFilter) ([]*grantqa.Grant, error)
	CreateGrantFn func(ctx context.Context, grant *grantqa.Grant) error
	CountGrantsFn func(ctx context.Context) (int, error)
}

func (s *GrantService) FindGrants(ctx context.Context, filter grantqa.GrantFilter) ([]*grantqa.Grant, error) {
	return s.FindGrantsFn(ctx, filter)
}

func (s *GrantService) CreateGrant(ctx context.Context, grant *grantqa.Grant) error {
	return s.CreateGrantFn(ctx, grant)
}

func (s *GrantService) CountGrants(ctx context.Context) (int, error) {
	return s.CountGrantsFn(ctx)
}
