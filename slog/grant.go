// Package slog provides log/slog decorators for grantqa services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/grantqa"
)

// Ensure LoggingGrantService implements grantqa.GrantService.
var _ grantqa.GrantService = (*LoggingGrantService)(nil)

// LoggingGrantService wraps a GrantService with logging.
type LoggingGrantService struct {
	next   grantqa.GrantService
	logger *slog.Logger
}

// NewLoggingGrantService creates a new LoggingGrantService.
func NewLoggingGrantService(next grantqa.GrantService, logger *slog.Logger) *LoggingGrantService {
	return &LoggingGrantService{next: next, logger: logger}
}

// FindGrants delegates to the wrapped service and logs the search.
func (s *LoggingGrantService) FindGrants(ctx context.Context, filter grantqa.GrantFilter) (grants []*grantqa.Grant, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"count", len(grants),
			"duration", time.Since(begin),
		}
		if filter.Keyword != nil {
			attrs = append(attrs, "keyword", *filter.Keyword)
		}
		if filter.Category != nil {
			attrs = append(attrs, "category", *filter.Category)
		}
		if err != nil {
			s.logger.Error("grant search", append(attrs, "err", err)...)
			return
		}
		s.logger.Info("grant search", attrs...)
	}(time.Now())
	return s.next.FindGrants(ctx, filter)
}

// CreateGrant delegates to the wrapped service and logs the insert.
func (s *LoggingGrantService) CreateGrant(ctx context.Context, grant *grantqa.Grant) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("grant create",
			"name", grant.Name,
			"id", grant.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateGrant(ctx, grant)
}

// CountGrants delegates to the wrapped service.
func (s *LoggingGrantService) CountGrants(ctx context.Context) (int, error) {
	return s.next.CountGrants(ctx)
}
