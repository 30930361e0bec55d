package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	VerificationStatusPending  = "pending"
	VerificationStatusVerified = "verified"
	VerificationStatusRejected = "rejected"
)

const (
	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodOnline       = "online"
	PaymentMethodCheque       = "cheque"
	PaymentMethodMobileMoney  = "mobile_money"
	PaymentMethodOther        = "other"
)

const (
	RecipientIndividual     = "individual"
	RecipientMosque         = "mosque"
	RecipientCharity        = "charity_organization"
	RecipientZakatAuthority = "zakat_authority"
	RecipientOther          = "other"
)

// ZakatPayment is one installment recorded against a calculation.
type ZakatPayment struct {
	ID                 uuid.UUID       `json:"id" db:"id"`
	CalculationID      uuid.UUID       `json:"calculation_id" db:"calculation_id"`
	UserID             string          `json:"user_id" db:"user_id"`
	Amount             decimal.Decimal `json:"amount" db:"amount"`
	Currency           string          `json:"currency" db:"currency"`
	PaymentMethod      string          `json:"payment_method" db:"payment_method"`
	RecipientType      string          `json:"recipient_type" db:"recipient_type"`
	RecipientName      string          `json:"recipient_name" db:"recipient_name"`
	RecipientDetails   *string         `json:"recipient_details,omitempty" db:"recipient_details"`
	PaymentDate        time.Time       `json:"payment_date" db:"payment_date"`
	ReferenceNumber    *string         `json:"reference_number,omitempty" db:"reference_number"`
	VerificationStatus string          `json:"verification_status" db:"verification_status"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at" db:"updated_at"`
}

type PaymentInput struct {
	Amount           decimal.Decimal `json:"amount" validate:"decimal_gt=0"`
	Currency         string          `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
	PaymentMethod    string          `json:"payment_method" validate:"required,oneof=cash bank_transfer online cheque mobile_money other"`
	RecipientType    string          `json:"recipient_type" validate:"required,oneof=individual mosque charity_organization zakat_authority other"`
	RecipientName    string          `json:"recipient_name" validate:"required,max=200"`
	RecipientDetails string          `json:"recipient_details,omitempty" validate:"max=1000"`
	PaymentDate      *time.Time      `json:"payment_date,omitempty"`
	ReferenceNumber  string          `json:"reference_number,omitempty" validate:"max=120"`
}

type VerifyPaymentRequest struct {
	Status string `json:"status" validate:"required,oneof=verified rejected"`
}
