package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/segyhp/zakat-engine/internal/domain"
)

const calculationColumns = `id, user_id, calculation_date, hijri_year, total_wealth, total_deductions,
		nisab_threshold, zakat_due, currency, wealth_breakdown, deductions_breakdown, payment_status,
		payment_date, amount_paid, payment_method, payment_reference, notes, created_at, updated_at`

type calculationRepository struct {
	db *sqlx.DB
}

func NewCalculationRepository(db *sqlx.DB) CalculationRepository {
	return &calculationRepository{db: db}
}

func (r *calculationRepository) Create(ctx context.Context, c *domain.ZakatCalculation) error {
	q := conn(ctx, r.db)
	query := q.Rebind(`
		INSERT INTO zakat_calculations (` + calculationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := q.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		c.CalculationDate,
		c.HijriYear,
		c.TotalWealth,
		c.TotalDeductions,
		c.NisabThreshold,
		c.ZakatDue,
		c.Currency,
		c.WealthBreakdown,
		c.DeductionsBreakdown,
		c.PaymentStatus,
		c.PaymentDate,
		c.AmountPaid,
		c.PaymentMethod,
		c.PaymentReference,
		c.Notes,
		c.CreatedAt,
		c.UpdatedAt,
	)

	return err
}

func (r *calculationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ZakatCalculation, error) {
	return r.get(ctx, id, false)
}

func (r *calculationRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.ZakatCalculation, error) {
	return r.get(ctx, id, true)
}

func (r *calculationRepository) get(ctx context.Context, id uuid.UUID, lock bool) (*domain.ZakatCalculation, error) {
	q := conn(ctx, r.db)
	query := `SELECT ` + calculationColumns + ` FROM zakat_calculations WHERE id = ?`
	// SQLite serializes writers on its single connection and has no row locks.
	if lock && q.DriverName() == DriverPostgres {
		query += ` FOR UPDATE`
	}

	var calculation domain.ZakatCalculation
	if err := q.GetContext(ctx, &calculation, q.Rebind(query), id); err != nil {
		return nil, err
	}

	return &calculation, nil
}

func (r *calculationRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.ZakatCalculation, error) {
	q := conn(ctx, r.db)
	query := q.Rebind(`
		SELECT ` + calculationColumns + `
		FROM zakat_calculations
		WHERE user_id = ?
		ORDER BY calculation_date DESC, created_at DESC
		LIMIT ? OFFSET ?
	`)

	calculations := []*domain.ZakatCalculation{}
	if err := q.SelectContext(ctx, &calculations, query, userID, limit, offset); err != nil {
		return nil, err
	}

	return calculations, nil
}

func (r *calculationRepository) ListAllByUser(ctx context.Context, userID string) ([]*domain.ZakatCalculation, error) {
	q := conn(ctx, r.db)
	query := q.Rebind(`
		SELECT ` + calculationColumns + `
		FROM zakat_calculations
		WHERE user_id = ?
		ORDER BY calculation_date DESC, created_at DESC
	`)

	calculations := []*domain.ZakatCalculation{}
	if err := q.SelectContext(ctx, &calculations, query, userID); err != nil {
		return nil, err
	}

	return calculations, nil
}

func (r *calculationRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	q := conn(ctx, r.db)

	var count int
	err := q.GetContext(ctx, &count, q.Rebind(`SELECT COUNT(*) FROM zakat_calculations WHERE user_id = ?`), userID)
	return count, err
}

func (r *calculationRepository) UpdatePaymentSummary(ctx context.Context, c *domain.ZakatCalculation) error {
	q := conn(ctx, r.db)
	query := q.Rebind(`
		UPDATE zakat_calculations
		SET payment_status = ?, payment_date = ?, amount_paid = ?, payment_method = ?,
			payment_reference = ?, updated_at = ?
		WHERE id = ?
	`)

	_, err := q.ExecContext(ctx, query,
		c.PaymentStatus,
		c.PaymentDate,
		c.AmountPaid,
		c.PaymentMethod,
		c.PaymentReference,
		c.UpdatedAt,
		c.ID,
	)

	return err
}

func (r *calculationRepository) ListUnpaidBefore(ctx context.Context, cutoff time.Time) ([]*domain.ZakatCalculation, error) {
	q := conn(ctx, r.db)
	query := q.Rebind(`
		SELECT ` + calculationColumns + `
		FROM zakat_calculations
		WHERE payment_status = ? AND calculation_date < ?
		ORDER BY calculation_date
	`)

	var candidates []*domain.ZakatCalculation
	if err := q.SelectContext(ctx, &candidates, query, domain.PaymentStatusCalculated, cutoff); err != nil {
		return nil, err
	}

	// zakat_due is TEXT on sqlite, so the positive check happens here for both dialects.
	calculations := make([]*domain.ZakatCalculation, 0, len(candidates))
	for _, c := range candidates {
		if c.ZakatDue.IsPositive() {
			calculations = append(calculations, c)
		}
	}

	return calculations, nil
}
