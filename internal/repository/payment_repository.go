package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/segyhp/zakat-engine/internal/domain"
)

const paymentColumns = `id, calculation_id, user_id, amount, currency, payment_method, recipient_type,
		recipient_name, recipient_details, payment_date, reference_number, verification_status,
		created_at, updated_at`

type paymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.ZakatPayment) error {
	q := conn(ctx, r.db)
	query := q.Rebind(`
		INSERT INTO zakat_payments (` + paymentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := q.ExecContext(ctx, query,
		p.ID,
		p.CalculationID,
		p.UserID,
		p.Amount,
		p.Currency,
		p.PaymentMethod,
		p.RecipientType,
		p.RecipientName,
		p.RecipientDetails,
		p.PaymentDate,
		p.ReferenceNumber,
		p.VerificationStatus,
		p.CreatedAt,
		p.UpdatedAt,
	)

	return err
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ZakatPayment, error) {
	q := conn(ctx, r.db)

	var payment domain.ZakatPayment
	err := q.GetContext(ctx, &payment, q.Rebind(`SELECT `+paymentColumns+` FROM zakat_payments WHERE id = ?`), id)
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

func (r *paymentRepository) ListByCalculation(ctx context.Context, calculationID uuid.UUID) ([]*domain.ZakatPayment, error) {
	q := conn(ctx, r.db)
	query := q.Rebind(`
		SELECT ` + paymentColumns + `
		FROM zakat_payments
		WHERE calculation_id = ?
		ORDER BY payment_date DESC, created_at DESC
	`)

	payments := []*domain.ZakatPayment{}
	if err := q.SelectContext(ctx, &payments, query, calculationID); err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.ZakatPayment, error) {
	q := conn(ctx, r.db)
	query := q.Rebind(`
		SELECT ` + paymentColumns + `
		FROM zakat_payments
		WHERE user_id = ?
		ORDER BY payment_date DESC, created_at DESC
	`)

	payments := []*domain.ZakatPayment{}
	if err := q.SelectContext(ctx, &payments, query, userID); err != nil {
		return nil, err
	}

	return payments, nil
}

// GetTotalVerified sums in Go so the result is exact on every dialect.
func (r *paymentRepository) GetTotalVerified(ctx context.Context, calculationID uuid.UUID) (decimal.Decimal, error) {
	q := conn(ctx, r.db)
	query := q.Rebind(`
		SELECT amount FROM zakat_payments
		WHERE calculation_id = ? AND verification_status = ?
	`)

	var amounts []decimal.Decimal
	if err := q.SelectContext(ctx, &amounts, query, calculationID, domain.VerificationStatusVerified); err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}

	return total, nil
}

func (r *paymentRepository) CountByCalculation(ctx context.Context, calculationID uuid.UUID) (int, error) {
	q := conn(ctx, r.db)

	var count int
	err := q.GetContext(ctx, &count, q.Rebind(`SELECT COUNT(*) FROM zakat_payments WHERE calculation_id = ?`), calculationID)
	return count, err
}

func (r *paymentRepository) GetLatestPayment(ctx context.Context, calculationID uuid.UUID) (*domain.ZakatPayment, error) {
	q := conn(ctx, r.db)
	query := q.Rebind(`
		SELECT ` + paymentColumns + `
		FROM zakat_payments
		WHERE calculation_id = ?
		ORDER BY payment_date DESC, created_at DESC
		LIMIT 1
	`)

	var payment domain.ZakatPayment
	if err := q.GetContext(ctx, &payment, query, calculationID); err != nil {
		return nil, err
	}

	return &payment, nil
}

func (r *paymentRepository) UpdateVerificationStatus(ctx context.Context, id uuid.UUID, status string, updatedAt time.Time) error {
	q := conn(ctx, r.db)
	query := q.Rebind(`UPDATE zakat_payments SET verification_status = ?, updated_at = ? WHERE id = ?`)

	_, err := q.ExecContext(ctx, query, status, updatedAt, id)
	return err
}
