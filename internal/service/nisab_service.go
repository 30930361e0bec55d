package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/segyhp/zakat-engine/internal/cache"
	"github.com/segyhp/zakat-engine/internal/domain"
	"github.com/segyhp/zakat-engine/internal/events"
	"github.com/segyhp/zakat-engine/internal/repository"
	customError "github.com/segyhp/zakat-engine/pkg/errors"
	"github.com/segyhp/zakat-engine/pkg/utils"
	"github.com/segyhp/zakat-engine/pkg/validation"
)

type NisabService struct {
	NisabRepo repository.NisabRepository
	Cache     cache.NisabCache
	Events    events.Sink
	logger    *slog.Logger
	now       func() time.Time
}

func NewNisabService(nisabRepo repository.NisabRepository, nisabCache cache.NisabCache, sink events.Sink, logger *slog.Logger) *NisabService {
	if nisabCache == nil {
		nisabCache = cache.NewNoopNisabCache()
	}
	return &NisabService{
		NisabRepo: nisabRepo,
		Cache:     nisabCache,
		Events:    sink,
		logger:    orDefault(logger),
		now:       time.Now,
	}
}

// CurrentRates returns the most recent snapshot for currency, or nil when none exists.
// A cache failure falls through to the store.
func (s *NisabService) CurrentRates(ctx context.Context, currency string) (*domain.NisabRates, error) {
	currency = utils.NormalizeCurrency(currency)

	cached, err := s.Cache.Get(ctx, currency)
	if err != nil {
		s.logger.WarnContext(ctx, "nisab cache read failed",
			slog.String("currency", currency),
			slog.Any("error", err),
		)
	}
	if cached != nil {
		return cached, nil
	}

	rates, err := s.NisabRepo.GetLatestByCurrency(ctx, currency)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, customError.WrapDatabaseError(err)
	}

	if err := s.Cache.Set(ctx, rates); err != nil {
		s.logger.WarnContext(ctx, "nisab cache write failed",
			slog.String("currency", currency),
			slog.Any("error", err),
		)
	}

	return rates, nil
}

// UpdateRates inserts a new snapshot with the canonical nisab masses.
func (s *NisabService) UpdateRates(ctx context.Context, request domain.UpdateNisabRatesRequest) (*domain.NisabRates, error) {
	if err := validation.Struct(request); err != nil {
		return nil, customError.WrapInvalidInput(validation.Describe(err), err)
	}

	now := s.now().UTC()
	rateDate := now
	if request.RateDate != nil {
		rateDate = request.RateDate.UTC()
	}

	rates := domain.NewNisabRates(utils.NormalizeCurrency(request.Currency), request.GoldPricePerGram, request.SilverPricePerGram, rateDate)
	rates.Source = optionalString(request.Source)
	rates.CreatedAt = now

	if err := s.NisabRepo.Create(ctx, rates); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	s.refreshCache(ctx, rates.Currency)

	events.Track(ctx, s.Events, s.logger, events.EventNisabRatesUpdated, events.CategoryNisab, map[string]any{
		"currency":              rates.Currency,
		"gold_price_per_gram":   rates.GoldPricePerGram.String(),
		"silver_price_per_gram": rates.SilverPricePerGram.String(),
		"rate_date":             rates.RateDate.Format(time.RFC3339),
	})

	return rates, nil
}

// refreshCache writes the store's latest snapshot for currency to the cache.
// The cache refuses older snapshots, so a read that began before the update
// cannot overwrite it. Any failure falls back to dropping the entry.
func (s *NisabService) refreshCache(ctx context.Context, currency string) {
	latest, err := s.NisabRepo.GetLatestByCurrency(ctx, currency)
	if err == nil {
		err = s.Cache.Set(ctx, latest)
	}
	if err == nil {
		return
	}

	s.logger.WarnContext(ctx, "nisab cache refresh failed",
		slog.String("currency", currency),
		slog.Any("error", err),
	)
	if err := s.Cache.Invalidate(ctx, currency); err != nil {
		s.logger.WarnContext(ctx, "nisab cache invalidation failed",
			slog.String("currency", currency),
			slog.Any("error", err),
		)
	}
}
