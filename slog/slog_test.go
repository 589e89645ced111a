package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/grantqa"
	"github.com/fwojciec/grantqa/mock"
	grantslog "github.com/fwojciec/grantqa/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingGrantService_FindGrants(t *testing.T) {
	t.Parallel()

	t.Run("logs keyword, count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.GrantService{
			FindGrantsFn: func(context.Context, grantqa.GrantFilter) ([]*grantqa.Grant, error) {
				return []*grantqa.Grant{{Name: "A"}, {Name: "B"}}, nil
			},
		}

		svc := grantslog.NewLoggingGrantService(inner, newTestLogger(&buf))
		keyword := "DeFi"
		grants, err := svc.FindGrants(context.Background(), grantqa.GrantFilter{Keyword: &keyword})

		require.NoError(t, err)
		assert.Len(t, grants, 2)
		output := buf.String()
		assert.Contains(t, output, "grant search")
		assert.Contains(t, output, "keyword=DeFi")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
		assert.Contains(t, output, "level=INFO")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.GrantService{
			FindGrantsFn: func(context.Context, grantqa.GrantFilter) ([]*grantqa.Grant, error) {
				return nil, errors.New("connection failed")
			},
		}

		svc := grantslog.NewLoggingGrantService(inner, newTestLogger(&buf))
		_, err := svc.FindGrants(context.Background(), grantqa.GrantFilter{})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "err=\"connection failed\"")
	})
}

func TestLoggingGrantService_CreateGrant(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.GrantService{
		CreateGrantFn: func(_ context.Context, g *grantqa.Grant) error {
			g.ID = "grant-1"
			return nil
		},
	}

	svc := grantslog.NewLoggingGrantService(inner, newTestLogger(&buf))
	err := svc.CreateGrant(context.Background(), &grantqa.Grant{Name: "Aave"})

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "grant create")
	assert.Contains(t, output, "name=Aave")
	assert.Contains(t, output, "id=grant-1")
}

func TestLoggingCompleter_Complete(t *testing.T) {
	t.Parallel()

	t.Run("logs successful completion", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Completer{
			CompleteFn: func(context.Context, string) (string, error) {
				return "hello", nil
			},
		}

		c := grantslog.NewLoggingCompleter(inner, newTestLogger(&buf))
		answer, err := c.Complete(context.Background(), "question")

		require.NoError(t, err)
		assert.Equal(t, "hello", answer)
		output := buf.String()
		assert.Contains(t, output, "completion")
		assert.Contains(t, output, "question_len=8")
		assert.Contains(t, output, "answer_len=5")
	})

	t.Run("logs failure at error level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Completer{
			CompleteFn: func(context.Context, string) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}

		c := grantslog.NewLoggingCompleter(inner, newTestLogger(&buf))
		_, err := c.Complete(context.Background(), "question")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "err=\"quota exceeded\"")
	})
}

func TestLoggingAsker_Ask(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Asker{
		AskFn: func(context.Context, string) (string, error) {
			return "answer", nil
		},
	}

	a := grantslog.NewLoggingAsker(inner, newTestLogger(&buf))
	answer, err := a.Ask(context.Background(), "Tell me about Uniswap")

	require.NoError(t, err)
	assert.Equal(t, "answer", answer)
	output := buf.String()
	assert.Contains(t, output, "msg=ask")
	assert.Contains(t, output, "keyword=Uniswap")
}
