package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrNisabRatesUnavailable  = errors.New("nisab rates unavailable")
	ErrPersistence            = errors.New("persistence failure")
	ErrCalculationNotFound    = errors.New("calculation not found")
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrReminderNotFound       = errors.New("reminder not found")
	ErrOwnershipMismatch      = errors.New("record belongs to another user")
	ErrPaymentAlreadyVerified = errors.New("payment is already verified")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeInvalidInput           = "INVALID_INPUT"
	ErrCodeNisabRatesUnavailable  = "NISAB_RATES_UNAVAILABLE"
	ErrCodeDatabaseError          = "DATABASE_ERROR"
	ErrCodeCalculationNotFound    = "CALCULATION_NOT_FOUND"
	ErrCodePaymentNotFound        = "PAYMENT_NOT_FOUND"
	ErrCodeReminderNotFound       = "REMINDER_NOT_FOUND"
	ErrCodeOwnershipMismatch      = "OWNERSHIP_MISMATCH"
	ErrCodePaymentAlreadyVerified = "PAYMENT_ALREADY_VERIFIED"
)

// CodeOf returns the business code carried by err, or "" when err is not a BusinessError.
func CodeOf(err error) string {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

func WrapInvalidInput(reason string, err error) *BusinessError {
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidInput, err)
	} else {
		err = ErrInvalidInput
	}
	return NewBusinessError(ErrCodeInvalidInput, reason, err)
}

func WrapNisabRatesUnavailable(currency string) *BusinessError {
	return NewBusinessError(
		ErrCodeNisabRatesUnavailable,
		fmt.Sprintf("No nisab rates recorded for currency %s", currency),
		ErrNisabRatesUnavailable,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		fmt.Errorf("%w: %w", ErrPersistence, err),
	)
}

func WrapCalculationNotFound(calculationID string) *BusinessError {
	return NewBusinessError(
		ErrCodeCalculationNotFound,
		fmt.Sprintf("Calculation with ID %s not found", calculationID),
		ErrCalculationNotFound,
	)
}

func WrapPaymentNotFound(paymentID string) *BusinessError {
	return NewBusinessError(
		ErrCodePaymentNotFound,
		fmt.Sprintf("Payment with ID %s not found", paymentID),
		ErrPaymentNotFound,
	)
}

func WrapReminderNotFound(reminderID string) *BusinessError {
	return NewBusinessError(
		ErrCodeReminderNotFound,
		fmt.Sprintf("Reminder with ID %s not found", reminderID),
		ErrReminderNotFound,
	)
}

func WrapOwnershipMismatch(calculationID, userID string) *BusinessError {
	return NewBusinessError(
		ErrCodeOwnershipMismatch,
		fmt.Sprintf("Calculation %s does not belong to user %s", calculationID, userID),
		ErrOwnershipMismatch,
	)
}

func WrapPaymentAlreadyVerified(paymentID string) *BusinessError {
	return NewBusinessError(
		ErrCodePaymentAlreadyVerified,
		fmt.Sprintf("Payment with ID %s is already verified", paymentID),
		ErrPaymentAlreadyVerified,
	)
}
