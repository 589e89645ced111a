package grantqa_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/grantqa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := grantqa.Errorf(grantqa.ECONFLICT, "grant %q already exists", "test")

	assert.Equal(t, grantqa.ECONFLICT, grantqa.ErrorCode(err))
	assert.Equal(t, "grant \"test\" already exists", grantqa.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, grantqa.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, grantqa.ErrorMessage(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, grantqa.EINTERNAL, grantqa.ErrorCode(err))
	assert.Equal(t, "Internal error.", grantqa.ErrorMessage(err))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	t.Run("carries ESTORE code", func(t *testing.T) {
		t.Parallel()

		err := grantqa.StoreError(errors.New("connection refused"))

		assert.Equal(t, grantqa.ESTORE, grantqa.ErrorCode(err))
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("unwraps to cause", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("connection refused")
		err := fmt.Errorf("ask: %w", grantqa.StoreError(cause))

		require.ErrorIs(t, err, cause)
		assert.Equal(t, grantqa.ESTORE, grantqa.ErrorCode(err))
	})
}
