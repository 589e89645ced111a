package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/grantqa"
)

// Ensure LoggingAsker implements grantqa.Asker.
var _ grantqa.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with logging.
type LoggingAsker struct {
	next   grantqa.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next grantqa.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs the question's keyword.
func (a *LoggingAsker) Ask(ctx context.Context, question string) (answer string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("ask",
			"keyword", grantqa.ExtractKeyword(question),
			"answer_len", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, question)
}
