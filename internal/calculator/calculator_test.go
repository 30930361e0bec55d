package calculator

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/zakat-engine/internal/domain"
	customError "github.com/segyhp/zakat-engine/pkg/errors"
)

func usdRates(gold, silver string) *domain.NisabRates {
	return domain.NewNisabRates("USD",
		decimal.RequireFromString(gold),
		decimal.RequireFromString(silver),
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	)
}

func TestCalculate_EndToEndExample(t *testing.T) {
	wealth := domain.WealthSnapshot{
		Cash:        decimal.NewFromInt(5000),
		BankSavings: decimal.NewFromInt(3000),
		Currency:    "USD",
	}

	result, err := Calculate(wealth, usdRates("60", "0.8"))
	require.NoError(t, err)

	assert.True(t, result.GoldNisabValue.Equal(decimal.NewFromInt(5100)))
	assert.True(t, result.SilverNisabValue.Equal(decimal.NewFromInt(476)))
	assert.True(t, result.NisabThreshold.Equal(decimal.NewFromInt(476)))
	assert.True(t, result.TotalWealth.Equal(decimal.NewFromInt(8000)))
	assert.True(t, result.ZakatableWealth.Equal(decimal.NewFromInt(8000)))
	assert.True(t, result.IsZakatDue)
	assert.True(t, result.ZakatDue.Equal(decimal.NewFromInt(200)), "got %s", result.ZakatDue)
	assert.Equal(t, "USD", result.Currency)
	require.NotNil(t, result.Nisab)
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name           string
		wealth         domain.WealthSnapshot
		rates          *domain.NisabRates
		expectedError  error
		expectedDue    decimal.Decimal
		expectedIsDue  bool
		expectedWealth decimal.Decimal
	}{
		{
			name: "below nisab owes nothing",
			wealth: domain.WealthSnapshot{
				Cash:     decimal.NewFromInt(400),
				Currency: "USD",
			},
			rates:          usdRates("60", "0.8"),
			expectedDue:    decimal.Zero,
			expectedIsDue:  false,
			expectedWealth: decimal.NewFromInt(400),
		},
		{
			name: "exactly at nisab is due",
			wealth: domain.WealthSnapshot{
				Cash:     decimal.NewFromInt(476),
				Currency: "USD",
			},
			rates:          usdRates("60", "0.8"),
			expectedDue:    decimal.RequireFromString("11.9"),
			expectedIsDue:  true,
			expectedWealth: decimal.NewFromInt(476),
		},
		{
			name: "deductions exceeding wealth clamp to zero",
			wealth: domain.WealthSnapshot{
				Cash:          decimal.NewFromInt(1000),
				PersonalDebts: decimal.NewFromInt(5000),
				Currency:      "USD",
			},
			rates:          usdRates("60", "0.8"),
			expectedDue:    decimal.Zero,
			expectedIsDue:  false,
			expectedWealth: decimal.NewFromInt(1000),
		},
		{
			name: "deductions pull wealth below nisab",
			wealth: domain.WealthSnapshot{
				Cash:              decimal.NewFromInt(1000),
				ImmediateExpenses: decimal.NewFromInt(600),
				Currency:          "USD",
			},
			rates:          usdRates("60", "0.8"),
			expectedDue:    decimal.Zero,
			expectedIsDue:  false,
			expectedWealth: decimal.NewFromInt(1000),
		},
		{
			name: "gold in grams converted with gold price",
			wealth: domain.WealthSnapshot{
				Gold:        decimal.NewFromInt(10),
				GoldInGrams: true,
				Currency:    "USD",
			},
			rates:          usdRates("60", "0.8"),
			expectedDue:    decimal.NewFromInt(15),
			expectedIsDue:  true,
			expectedWealth: decimal.NewFromInt(600),
		},
		{
			name: "silver in grams converted with silver price",
			wealth: domain.WealthSnapshot{
				Silver:        decimal.NewFromInt(1000),
				SilverInGrams: true,
				Currency:      "USD",
			},
			rates:          usdRates("60", "0.8"),
			expectedDue:    decimal.NewFromInt(20),
			expectedIsDue:  true,
			expectedWealth: decimal.NewFromInt(800),
		},
		{
			name: "gold as currency ignores price",
			wealth: domain.WealthSnapshot{
				Gold:     decimal.NewFromInt(10),
				Currency: "USD",
			},
			rates:          usdRates("60", "0.8"),
			expectedDue:    decimal.Zero,
			expectedIsDue:  false,
			expectedWealth: decimal.NewFromInt(10),
		},
		{
			name: "grams without rates fails",
			wealth: domain.WealthSnapshot{
				Gold:        decimal.NewFromInt(10),
				GoldInGrams: true,
				Currency:    "USD",
			},
			rates:         nil,
			expectedError: customError.ErrNisabRatesUnavailable,
		},
		{
			name: "currency amounts without rates use a zero threshold",
			wealth: domain.WealthSnapshot{
				Cash:     decimal.NewFromInt(100),
				Currency: "USD",
			},
			rates:          nil,
			expectedDue:    decimal.RequireFromString("2.5"),
			expectedIsDue:  true,
			expectedWealth: decimal.NewFromInt(100),
		},
		{
			name: "debts above assets without rates are not due",
			wealth: domain.WealthSnapshot{
				Cash:          decimal.NewFromInt(100),
				PersonalDebts: decimal.NewFromInt(500),
				Currency:      "USD",
			},
			rates:          nil,
			expectedDue:    decimal.Zero,
			expectedIsDue:  false,
			expectedWealth: decimal.NewFromInt(100),
		},
		{
			name: "negative field rejected",
			wealth: domain.WealthSnapshot{
				Cash:        decimal.NewFromInt(5000),
				OtherAssets: decimal.NewFromInt(-1),
				Currency:    "USD",
			},
			rates:         usdRates("60", "0.8"),
			expectedError: customError.ErrInvalidInput,
		},
		{
			name: "missing currency rejected",
			wealth: domain.WealthSnapshot{
				Cash: decimal.NewFromInt(5000),
			},
			rates:         usdRates("60", "0.8"),
			expectedError: customError.ErrInvalidInput,
		},
		{
			name: "rates for another currency rejected",
			wealth: domain.WealthSnapshot{
				Cash:     decimal.NewFromInt(5000),
				Currency: "EUR",
			},
			rates:         usdRates("60", "0.8"),
			expectedError: customError.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Calculate(tt.wealth, tt.rates)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "got %v", err)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedIsDue, result.IsZakatDue)
			assert.True(t, result.ZakatDue.Equal(tt.expectedDue), "expected due %s, got %s", tt.expectedDue, result.ZakatDue)
			assert.True(t, result.TotalWealth.Equal(tt.expectedWealth), "expected wealth %s, got %s", tt.expectedWealth, result.TotalWealth)
		})
	}
}

func TestCalculate_LowercaseCurrencyNormalized(t *testing.T) {
	result, err := Calculate(domain.WealthSnapshot{Cash: decimal.NewFromInt(1000), Currency: "usd"}, usdRates("60", "0.8"))
	require.NoError(t, err)
	assert.Equal(t, "USD", result.Currency)
}

func TestNisabThreshold_UsesLowerValuation(t *testing.T) {
	tests := []struct {
		name     string
		gold     string
		silver   string
		expected decimal.Decimal
	}{
		{name: "silver lower", gold: "60", silver: "0.8", expected: decimal.NewFromInt(476)},
		{name: "gold lower", gold: "1", silver: "10", expected: decimal.NewFromInt(85)},
		{name: "equal", gold: "7", silver: "1", expected: decimal.NewFromInt(595)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, threshold := NisabThreshold(usdRates(tt.gold, tt.silver))
			assert.True(t, threshold.Equal(tt.expected), "got %s", threshold)
		})
	}

	_, _, threshold := NisabThreshold(nil)
	assert.True(t, threshold.IsZero())
}

func randomAmount(r *rand.Rand) decimal.Decimal {
	return decimal.New(r.Int63n(2_000_000), -2)
}

func TestCalculate_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		rates := domain.NewNisabRates("USD",
			decimal.New(r.Int63n(10_000)+1, -2),
			decimal.New(r.Int63n(1_000)+1, -3),
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		)
		wealth := domain.WealthSnapshot{
			Cash:              randomAmount(r),
			BankSavings:       randomAmount(r),
			Gold:              randomAmount(r),
			Silver:            randomAmount(r),
			Investments:       randomAmount(r),
			BusinessAssets:    randomAmount(r),
			DebtsOwedToYou:    randomAmount(r),
			OtherAssets:       randomAmount(r),
			PersonalDebts:     randomAmount(r),
			BusinessDebts:     randomAmount(r),
			ImmediateExpenses: randomAmount(r),
			OtherDeductions:   randomAmount(r),
			GoldInGrams:       r.Intn(2) == 0,
			SilverInGrams:     r.Intn(2) == 0,
			Currency:          "USD",
		}

		result, err := Calculate(wealth, rates)
		require.NoError(t, err)

		expectedThreshold := decimal.Min(
			rates.GoldPricePerGram.Mul(decimal.NewFromInt(85)),
			rates.SilverPricePerGram.Mul(decimal.NewFromInt(595)),
		)
		assert.True(t, result.NisabThreshold.Equal(expectedThreshold))

		net := result.TotalWealth.Sub(result.TotalDeductions)
		if net.LessThan(result.NisabThreshold) {
			assert.False(t, result.IsZakatDue)
			assert.True(t, result.ZakatDue.IsZero())
		} else {
			assert.True(t, result.IsZakatDue)
			assert.True(t, result.ZakatDue.Equal(result.ZakatableWealth.Mul(ZakatRate)))
		}
		assert.False(t, result.ZakatableWealth.IsNegative())

		if !wealth.GoldInGrams && !wealth.SilverInGrams {
			unrated, err := Calculate(wealth, nil)
			require.NoError(t, err)
			assert.Equal(t, !net.IsNegative(), unrated.IsZakatDue)
		}

		again, err := Calculate(wealth, rates)
		require.NoError(t, err)
		first, _ := json.Marshal(result)
		second, _ := json.Marshal(again)
		assert.Equal(t, string(first), string(second))
	}
}
