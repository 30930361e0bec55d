package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Nisab threshold masses in grams. Fixed jurisprudential constants.
const (
	GoldNisabGrams   = 85
	SilverNisabGrams = 595
)

// NisabRates is an immutable, dated metal price snapshot for one currency.
type NisabRates struct {
	ID                 uuid.UUID       `json:"id" db:"id"`
	Currency           string          `json:"currency" db:"currency"`
	GoldPricePerGram   decimal.Decimal `json:"gold_price_per_gram" db:"gold_price_per_gram"`
	SilverPricePerGram decimal.Decimal `json:"silver_price_per_gram" db:"silver_price_per_gram"`
	GoldNisabGrams     decimal.Decimal `json:"gold_nisab_grams" db:"gold_nisab_grams"`
	SilverNisabGrams   decimal.Decimal `json:"silver_nisab_grams" db:"silver_nisab_grams"`
	RateDate           time.Time       `json:"rate_date" db:"rate_date"`
	Source             *string         `json:"source,omitempty" db:"source"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
}

// NewNisabRates builds a snapshot with the canonical nisab masses.
func NewNisabRates(currency string, goldPrice, silverPrice decimal.Decimal, rateDate time.Time) *NisabRates {
	return &NisabRates{
		ID:                 uuid.New(),
		Currency:           currency,
		GoldPricePerGram:   goldPrice,
		SilverPricePerGram: silverPrice,
		GoldNisabGrams:     decimal.NewFromInt(GoldNisabGrams),
		SilverNisabGrams:   decimal.NewFromInt(SilverNisabGrams),
		RateDate:           rateDate,
	}
}

// NewerThan reports whether r supersedes other, ordering by rate date and then creation time.
func (r *NisabRates) NewerThan(other *NisabRates) bool {
	if other == nil {
		return true
	}
	if !r.RateDate.Equal(other.RateDate) {
		return r.RateDate.After(other.RateDate)
	}
	return r.CreatedAt.After(other.CreatedAt)
}

type UpdateNisabRatesRequest struct {
	Currency           string          `json:"currency" validate:"required,len=3,alpha"`
	GoldPricePerGram   decimal.Decimal `json:"gold_price_per_gram" validate:"decimal_gt=0"`
	SilverPricePerGram decimal.Decimal `json:"silver_price_per_gram" validate:"decimal_gt=0"`
	RateDate           *time.Time      `json:"rate_date,omitempty"`
	Source             string          `json:"source,omitempty" validate:"max=120"`
}
