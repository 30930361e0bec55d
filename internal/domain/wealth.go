package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// WealthSnapshot is the user-supplied asset and liability picture for one calculation.
// Gold and silver are currency amounts unless the matching *InGrams flag is set.
type WealthSnapshot struct {
	Cash           decimal.Decimal `json:"cash" validate:"decimal_gte=0"`
	BankSavings    decimal.Decimal `json:"bank_savings" validate:"decimal_gte=0"`
	Gold           decimal.Decimal `json:"gold" validate:"decimal_gte=0"`
	Silver         decimal.Decimal `json:"silver" validate:"decimal_gte=0"`
	Investments    decimal.Decimal `json:"investments" validate:"decimal_gte=0"`
	BusinessAssets decimal.Decimal `json:"business_assets" validate:"decimal_gte=0"`
	DebtsOwedToYou decimal.Decimal `json:"debts_owed_to_you" validate:"decimal_gte=0"`
	OtherAssets    decimal.Decimal `json:"other_assets" validate:"decimal_gte=0"`

	PersonalDebts     decimal.Decimal `json:"personal_debts" validate:"decimal_gte=0"`
	BusinessDebts     decimal.Decimal `json:"business_debts" validate:"decimal_gte=0"`
	ImmediateExpenses decimal.Decimal `json:"immediate_expenses" validate:"decimal_gte=0"`
	OtherDeductions   decimal.Decimal `json:"other_deductions" validate:"decimal_gte=0"`

	GoldInGrams   bool   `json:"gold_in_grams"`
	SilverInGrams bool   `json:"silver_in_grams"`
	Currency      string `json:"currency" validate:"required,len=3,alpha"`
}

// WealthBreakdown holds the eight asset components in currency units.
type WealthBreakdown struct {
	Cash           decimal.Decimal `json:"cash"`
	BankSavings    decimal.Decimal `json:"bank_savings"`
	Gold           decimal.Decimal `json:"gold"`
	Silver         decimal.Decimal `json:"silver"`
	Investments    decimal.Decimal `json:"investments"`
	BusinessAssets decimal.Decimal `json:"business_assets"`
	DebtsOwedToYou decimal.Decimal `json:"debts_owed_to_you"`
	OtherAssets    decimal.Decimal `json:"other_assets"`
}

// Total sums every component.
func (b WealthBreakdown) Total() decimal.Decimal {
	return decimal.Sum(b.Cash, b.BankSavings, b.Gold, b.Silver,
		b.Investments, b.BusinessAssets, b.DebtsOwedToYou, b.OtherAssets)
}

// Value stores the breakdown as a JSON document.
func (b WealthBreakdown) Value() (driver.Value, error) {
	return marshalColumn(b)
}

// Scan reads a JSON document written by Value.
func (b *WealthBreakdown) Scan(src any) error {
	return unmarshalColumn(src, b)
}

// DeductionsBreakdown holds the four liability components.
type DeductionsBreakdown struct {
	PersonalDebts     decimal.Decimal `json:"personal_debts"`
	BusinessDebts     decimal.Decimal `json:"business_debts"`
	ImmediateExpenses decimal.Decimal `json:"immediate_expenses"`
	OtherDeductions   decimal.Decimal `json:"other_deductions"`
}

// Total sums every component.
func (d DeductionsBreakdown) Total() decimal.Decimal {
	return decimal.Sum(d.PersonalDebts, d.BusinessDebts, d.ImmediateExpenses, d.OtherDeductions)
}

func (d DeductionsBreakdown) Value() (driver.Value, error) {
	return marshalColumn(d)
}

func (d *DeductionsBreakdown) Scan(src any) error {
	return unmarshalColumn(src, d)
}

func marshalColumn(v any) (driver.Value, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func unmarshalColumn(src any, dest any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported breakdown column type %T", src)
	}
}
