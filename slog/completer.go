package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/grantqa"
)

// Ensure LoggingCompleter implements grantqa.Completer.
var _ grantqa.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with logging. Failures are logged at
// error level since the fallback replaces them with an apology.
type LoggingCompleter struct {
	next   grantqa.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next grantqa.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs the call.
func (c *LoggingCompleter) Complete(ctx context.Context, question string) (answer string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			c.logger.Error("completion",
				"question_len", len(question),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		c.logger.Info("completion",
			"question_len", len(question),
			"answer_len", len(answer),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return c.next.Complete(ctx, question)
}
