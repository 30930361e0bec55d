package domain

import "github.com/shopspring/decimal"

// ZakatAnalyticsSummary is a read-only reporting view over a user's calculations and payments.
type ZakatAnalyticsSummary struct {
	UserID                string              `json:"user_id"`
	CalculationCount      int                 `json:"calculation_count"`
	PaymentCount          int                 `json:"payment_count"`
	TotalCalculated       decimal.Decimal     `json:"total_calculated"`
	TotalPaid             decimal.Decimal     `json:"total_paid"`
	PaymentRate           decimal.Decimal     `json:"payment_rate"`
	AverageZakat          decimal.Decimal     `json:"average_zakat"`
	YearlyBreakdown       []YearlyZakat       `json:"yearly_breakdown"`
	RecipientDistribution []DistributionEntry `json:"recipient_distribution"`
	MethodDistribution    []DistributionEntry `json:"method_distribution"`
}

type YearlyZakat struct {
	HijriYear  string          `json:"hijri_year"`
	Count      int             `json:"count"`
	Calculated decimal.Decimal `json:"calculated"`
	Paid       decimal.Decimal `json:"paid"`
}

type DistributionEntry struct {
	Key    string          `json:"key"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}
