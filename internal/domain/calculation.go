package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PaymentStatusCalculated    = "calculated"
	PaymentStatusPaid          = "paid"
	PaymentStatusPartiallyPaid = "partially_paid"
	PaymentStatusOverdue       = "overdue"
)

// ZakatCalculationResult is the output of one pure calculation run.
type ZakatCalculationResult struct {
	Wealth           WealthBreakdown     `json:"wealth_breakdown"`
	Deductions       DeductionsBreakdown `json:"deductions_breakdown"`
	TotalWealth      decimal.Decimal     `json:"total_wealth"`
	TotalDeductions  decimal.Decimal     `json:"total_deductions"`
	ZakatableWealth  decimal.Decimal     `json:"zakatable_wealth"`
	GoldNisabValue   decimal.Decimal     `json:"gold_nisab_value"`
	SilverNisabValue decimal.Decimal     `json:"silver_nisab_value"`
	NisabThreshold   decimal.Decimal     `json:"nisab_threshold"`
	IsZakatDue       bool                `json:"is_zakat_due"`
	ZakatDue         decimal.Decimal     `json:"zakat_due"`
	Currency         string              `json:"currency"`
	Nisab            *NisabRates         `json:"nisab,omitempty"`
}

// ZakatCalculation is a persisted calculation owned by one user.
// Breakdown fields never change after creation; only the payment summary does.
type ZakatCalculation struct {
	ID                  uuid.UUID           `json:"id" db:"id"`
	UserID              string              `json:"user_id" db:"user_id"`
	CalculationDate     time.Time           `json:"calculation_date" db:"calculation_date"`
	HijriYear           string              `json:"hijri_year" db:"hijri_year"`
	TotalWealth         decimal.Decimal     `json:"total_wealth" db:"total_wealth"`
	TotalDeductions     decimal.Decimal     `json:"total_deductions" db:"total_deductions"`
	NisabThreshold      decimal.Decimal     `json:"nisab_threshold" db:"nisab_threshold"`
	ZakatDue            decimal.Decimal     `json:"zakat_due" db:"zakat_due"`
	Currency            string              `json:"currency" db:"currency"`
	WealthBreakdown     WealthBreakdown     `json:"wealth_breakdown" db:"wealth_breakdown"`
	DeductionsBreakdown DeductionsBreakdown `json:"deductions_breakdown" db:"deductions_breakdown"`
	PaymentStatus       string              `json:"payment_status" db:"payment_status"`
	PaymentDate         *time.Time          `json:"payment_date,omitempty" db:"payment_date"`
	AmountPaid          decimal.Decimal     `json:"amount_paid" db:"amount_paid"`
	PaymentMethod       *string             `json:"payment_method,omitempty" db:"payment_method"`
	PaymentReference    *string             `json:"payment_reference,omitempty" db:"payment_reference"`
	Notes               *string             `json:"notes,omitempty" db:"notes"`
	CreatedAt           time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at" db:"updated_at"`
}

// DTOs for requests and responses

type RecordCalculationRequest struct {
	WealthSnapshot
	Notes string `json:"notes,omitempty" validate:"max=1000"`
}

type CalculationPage struct {
	Items    []*ZakatCalculation `json:"items"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
	Total    int                 `json:"total"`
}
