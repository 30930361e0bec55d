// Package calculator holds the pure zakat rules: liability from a wealth snapshot,
// the nisab threshold from metal prices, and the payment status function.
package calculator

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/segyhp/zakat-engine/internal/domain"
	customError "github.com/segyhp/zakat-engine/pkg/errors"
	"github.com/segyhp/zakat-engine/pkg/validation"
)

// ZakatRate is the fixed 2.5% levy.
var ZakatRate = decimal.RequireFromString("0.025")

// Validate rejects negative amounts and a missing currency.
func Validate(w domain.WealthSnapshot) error {
	if err := validation.Struct(w); err != nil {
		return customError.WrapInvalidInput(validation.Describe(err), err)
	}
	return nil
}

// Calculate computes the zakat liability of w against the nisab snapshot rates.
// rates may be nil as long as neither metal is given in grams; the threshold is
// then zero.
func Calculate(w domain.WealthSnapshot, rates *domain.NisabRates) (*domain.ZakatCalculationResult, error) {
	if err := Validate(w); err != nil {
		return nil, err
	}

	currency := strings.ToUpper(w.Currency)
	if rates != nil && !strings.EqualFold(rates.Currency, currency) {
		return nil, customError.WrapInvalidInput("nisab rates currency "+rates.Currency+" does not match "+currency, nil)
	}

	goldValue, err := metalValue(w.Gold, w.GoldInGrams, rates, currency, func(r *domain.NisabRates) decimal.Decimal {
		return r.GoldPricePerGram
	})
	if err != nil {
		return nil, err
	}
	silverValue, err := metalValue(w.Silver, w.SilverInGrams, rates, currency, func(r *domain.NisabRates) decimal.Decimal {
		return r.SilverPricePerGram
	})
	if err != nil {
		return nil, err
	}

	wealth := domain.WealthBreakdown{
		Cash:           w.Cash,
		BankSavings:    w.BankSavings,
		Gold:           goldValue,
		Silver:         silverValue,
		Investments:    w.Investments,
		BusinessAssets: w.BusinessAssets,
		DebtsOwedToYou: w.DebtsOwedToYou,
		OtherAssets:    w.OtherAssets,
	}
	deductions := domain.DeductionsBreakdown{
		PersonalDebts:     w.PersonalDebts,
		BusinessDebts:     w.BusinessDebts,
		ImmediateExpenses: w.ImmediateExpenses,
		OtherDeductions:   w.OtherDeductions,
	}

	totalWealth := wealth.Total()
	totalDeductions := deductions.Total()
	zakatable := decimal.Max(decimal.Zero, totalWealth.Sub(totalDeductions))

	goldNisab, silverNisab, threshold := NisabThreshold(rates)

	// Compare the unclamped net so debts above assets never count as due
	isDue := totalWealth.Sub(totalDeductions).GreaterThanOrEqual(threshold)
	zakatDue := decimal.Zero
	if isDue {
		zakatDue = zakatable.Mul(ZakatRate)
	}

	return &domain.ZakatCalculationResult{
		Wealth:           wealth,
		Deductions:       deductions,
		TotalWealth:      totalWealth,
		TotalDeductions:  totalDeductions,
		ZakatableWealth:  zakatable,
		GoldNisabValue:   goldNisab,
		SilverNisabValue: silverNisab,
		NisabThreshold:   threshold,
		IsZakatDue:       isDue,
		ZakatDue:         zakatDue,
		Currency:         currency,
		Nisab:            rates,
	}, nil
}

// NisabThreshold values both nisab masses and returns the lower as the threshold.
func NisabThreshold(rates *domain.NisabRates) (gold, silver, threshold decimal.Decimal) {
	if rates == nil {
		return decimal.Zero, decimal.Zero, decimal.Zero
	}
	gold = rates.GoldNisabGrams.Mul(rates.GoldPricePerGram)
	silver = rates.SilverNisabGrams.Mul(rates.SilverPricePerGram)
	return gold, silver, decimal.Min(gold, silver)
}

func metalValue(
	amount decimal.Decimal,
	inGrams bool,
	rates *domain.NisabRates,
	currency string,
	price func(*domain.NisabRates) decimal.Decimal,
) (decimal.Decimal, error) {
	if !inGrams {
		return amount, nil
	}
	if rates == nil {
		return decimal.Zero, customError.WrapNisabRatesUnavailable(currency)
	}
	return amount.Mul(price(rates)), nil
}
