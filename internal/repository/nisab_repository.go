package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/segyhp/zakat-engine/internal/domain"
)

type nisabRepository struct {
	db *sqlx.DB
}

func NewNisabRepository(db *sqlx.DB) NisabRepository {
	return &nisabRepository{db: db}
}

func (r *nisabRepository) Create(ctx context.Context, rates *domain.NisabRates) error {
	q := conn(ctx, r.db)
	query := q.Rebind(`
		INSERT INTO nisab_rates (id, currency, gold_price_per_gram, silver_price_per_gram,
			gold_nisab_grams, silver_nisab_grams, rate_date, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := q.ExecContext(ctx, query,
		rates.ID,
		rates.Currency,
		rates.GoldPricePerGram,
		rates.SilverPricePerGram,
		rates.GoldNisabGrams,
		rates.SilverNisabGrams,
		rates.RateDate,
		rates.Source,
		rates.CreatedAt,
	)

	return err
}

func (r *nisabRepository) GetLatestByCurrency(ctx context.Context, currency string) (*domain.NisabRates, error) {
	q := conn(ctx, r.db)
	query := q.Rebind(`
		SELECT id, currency, gold_price_per_gram, silver_price_per_gram, gold_nisab_grams,
			silver_nisab_grams, rate_date, source, created_at
		FROM nisab_rates
		WHERE currency = ?
		ORDER BY rate_date DESC, created_at DESC
		LIMIT 1
	`)

	var rates domain.NisabRates
	if err := q.GetContext(ctx, &rates, query, currency); err != nil {
		return nil, err
	}

	return &rates, nil
}
