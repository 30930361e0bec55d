package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapDatabaseError(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapDatabaseError(cause)

	assert.True(t, errors.Is(err, ErrPersistence))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, ErrCodeDatabaseError, CodeOf(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWrapInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		reason string
		cause  error
	}{
		{name: "with cause", reason: "cash must not be negative", cause: errors.New("gte")},
		{name: "without cause", reason: "amount must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapInvalidInput(tt.reason, tt.cause)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Equal(t, ErrCodeInvalidInput, CodeOf(err))
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestCodeOf_NonBusinessError(t *testing.T) {
	assert.Equal(t, "", CodeOf(errors.New("plain")))
	assert.Equal(t, "", CodeOf(nil))
}

func TestWrappedSentinels(t *testing.T) {
	assert.True(t, errors.Is(WrapNisabRatesUnavailable("USD"), ErrNisabRatesUnavailable))
	assert.True(t, errors.Is(WrapCalculationNotFound("c1"), ErrCalculationNotFound))
	assert.True(t, errors.Is(WrapPaymentNotFound("p1"), ErrPaymentNotFound))
	assert.True(t, errors.Is(WrapReminderNotFound("r1"), ErrReminderNotFound))
	assert.True(t, errors.Is(WrapOwnershipMismatch("c1", "u1"), ErrOwnershipMismatch))
	assert.True(t, errors.Is(WrapPaymentAlreadyVerified("p1"), ErrPaymentAlreadyVerified))
}
