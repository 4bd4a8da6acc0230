package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreError_MatchesSentinelAndCause(t *testing.T) {
	err := &StoreError{Sentinel: ErrStoreUnavailable, Cause: context.DeadlineExceeded}
	wrapped := fmt.Errorf("upsert theme: %w", err)

	assert.True(t, errors.Is(wrapped, ErrStoreUnavailable))
	assert.True(t, errors.Is(wrapped, context.DeadlineExceeded))
	assert.False(t, errors.Is(wrapped, ErrConstraintViolation))
	assert.Equal(t, "store unavailable: context deadline exceeded", err.Error())
}

func TestStoreError_WithoutCause(t *testing.T) {
	err := &StoreError{Sentinel: ErrParentNotFound}

	assert.True(t, errors.Is(err, ErrParentNotFound))
	assert.Equal(t, "parent record not found", err.Error())
}
