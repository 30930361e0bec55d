package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/segyhp/zakat-engine/internal/domain"
)

// PaymentStatusFor derives a calculation's payment status from its linked payments.
//
// verifiedTotal sums only verified payments, while paymentCount counts every
// payment row regardless of verification. Any recorded payment therefore moves
// the status off calculated/overdue, and only verified money can make it paid.
func PaymentStatusFor(zakatDue, verifiedTotal decimal.Decimal, paymentCount int, current string) string {
	if paymentCount == 0 {
		return current
	}
	if verifiedTotal.GreaterThanOrEqual(zakatDue) {
		return domain.PaymentStatusPaid
	}
	return domain.PaymentStatusPartiallyPaid
}
