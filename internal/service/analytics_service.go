package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/segyhp/zakat-engine/internal/domain"
	"github.com/segyhp/zakat-engine/internal/repository"
	customError "github.com/segyhp/zakat-engine/pkg/errors"
	"github.com/segyhp/zakat-engine/pkg/utils"
)

// AnalyticsService builds read-only reporting views over calculations and payments.
type AnalyticsService struct {
	CalculationRepo repository.CalculationRepository
	PaymentRepo     repository.PaymentRepository
}

func NewAnalyticsService(calculationRepo repository.CalculationRepository, paymentRepo repository.PaymentRepository) *AnalyticsService {
	return &AnalyticsService{
		CalculationRepo: calculationRepo,
		PaymentRepo:     paymentRepo,
	}
}

// GetAnalytics aggregates a user's zakat history.
//
// Paid amounts count verified payments only. Distributions cover every payment
// that was not rejected.
func (s *AnalyticsService) GetAnalytics(ctx context.Context, userID string) (*domain.ZakatAnalyticsSummary, error) {
	calculations, err := s.CalculationRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	payments, err := s.PaymentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	summary := &domain.ZakatAnalyticsSummary{
		UserID:                userID,
		CalculationCount:      len(calculations),
		TotalCalculated:       decimal.Zero,
		TotalPaid:             decimal.Zero,
		PaymentRate:           decimal.Zero,
		AverageZakat:          decimal.Zero,
		YearlyBreakdown:       []domain.YearlyZakat{},
		RecipientDistribution: []domain.DistributionEntry{},
		MethodDistribution:    []domain.DistributionEntry{},
	}

	years := map[string]*domain.YearlyZakat{}
	yearOf := map[string]string{}
	for _, c := range calculations {
		summary.TotalCalculated = summary.TotalCalculated.Add(c.ZakatDue)
		yearOf[c.ID.String()] = c.HijriYear

		y, ok := years[c.HijriYear]
		if !ok {
			y = &domain.YearlyZakat{HijriYear: c.HijriYear, Calculated: decimal.Zero, Paid: decimal.Zero}
			years[c.HijriYear] = y
		}
		y.Count++
		y.Calculated = y.Calculated.Add(c.ZakatDue)
	}

	recipients := map[string]*domain.DistributionEntry{}
	methods := map[string]*domain.DistributionEntry{}
	for _, p := range payments {
		if p.VerificationStatus == domain.VerificationStatusRejected {
			continue
		}
		summary.PaymentCount++
		addTo(recipients, p.RecipientType, p.Amount)
		addTo(methods, p.PaymentMethod, p.Amount)

		if p.VerificationStatus != domain.VerificationStatusVerified {
			continue
		}
		summary.TotalPaid = summary.TotalPaid.Add(p.Amount)
		if y, ok := years[yearOf[p.CalculationID.String()]]; ok {
			y.Paid = y.Paid.Add(p.Amount)
		}
	}

	summary.PaymentRate = utils.Percentage(summary.TotalPaid, summary.TotalCalculated)
	if len(calculations) > 0 {
		summary.AverageZakat = summary.TotalCalculated.Div(decimal.NewFromInt(int64(len(calculations)))).Round(2)
	}

	for _, y := range years {
		summary.YearlyBreakdown = append(summary.YearlyBreakdown, *y)
	}
	sort.Slice(summary.YearlyBreakdown, func(i, j int) bool {
		return summary.YearlyBreakdown[i].HijriYear < summary.YearlyBreakdown[j].HijriYear
	})
	summary.RecipientDistribution = sortedEntries(recipients)
	summary.MethodDistribution = sortedEntries(methods)

	return summary, nil
}

func addTo(entries map[string]*domain.DistributionEntry, key string, amount decimal.Decimal) {
	e, ok := entries[key]
	if !ok {
		e = &domain.DistributionEntry{Key: key, Amount: decimal.Zero}
		entries[key] = e
	}
	e.Count++
	e.Amount = e.Amount.Add(amount)
}

// sortedEntries orders by amount descending, then key.
func sortedEntries(entries map[string]*domain.DistributionEntry) []domain.DistributionEntry {
	out := make([]domain.DistributionEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Key < out[j].Key
	})
	return out
}
