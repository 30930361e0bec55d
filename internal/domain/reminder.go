package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReminderTypeAnnualCalculation = "annual_calculation"
	ReminderTypePaymentDue        = "payment_due"
	ReminderTypePaymentOverdue    = "payment_overdue"
	ReminderTypeCustom            = "custom"
)

const (
	RecurrenceWeekly      = "weekly"
	RecurrenceMonthly     = "monthly"
	RecurrenceYearly      = "yearly"
	RecurrenceLunarYearly = "lunar_yearly"
)

// ZakatReminder is a scheduled nudge for the external delivery system to pick up.
type ZakatReminder struct {
	ID                uuid.UUID     `json:"id" db:"id"`
	UserID            string        `json:"user_id" db:"user_id"`
	CalculationID     uuid.NullUUID `json:"calculation_id" db:"calculation_id"`
	Type              string        `json:"type" db:"reminder_type"`
	Title             string        `json:"title" db:"title"`
	Message           string        `json:"message" db:"message"`
	ScheduledDate     time.Time     `json:"scheduled_date" db:"scheduled_date"`
	IsRecurring       bool          `json:"is_recurring" db:"is_recurring"`
	RecurrencePattern *string       `json:"recurrence_pattern,omitempty" db:"recurrence_pattern"`
	IsSent            bool          `json:"is_sent" db:"is_sent"`
	SentAt            *time.Time    `json:"sent_at,omitempty" db:"sent_at"`
	AdvancedAt        *time.Time    `json:"-" db:"advanced_at"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
}

// ReminderRequest is what callers hand to the reminder scheduler.
type ReminderRequest struct {
	CalculationID     uuid.NullUUID `json:"calculation_id"`
	Type              string        `json:"type" validate:"required,oneof=annual_calculation payment_due payment_overdue custom"`
	Title             string        `json:"title" validate:"required,max=200"`
	Message           string        `json:"message" validate:"required,max=2000"`
	ScheduledDate     time.Time     `json:"scheduled_date" validate:"required"`
	Recurring         bool          `json:"recurring"`
	RecurrencePattern string        `json:"recurrence_pattern,omitempty" validate:"omitempty,oneof=weekly monthly yearly lunar_yearly"`
}
