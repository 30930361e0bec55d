package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/segyhp/zakat-engine/internal/calculator"
	"github.com/segyhp/zakat-engine/internal/domain"
	"github.com/segyhp/zakat-engine/internal/events"
	"github.com/segyhp/zakat-engine/internal/repository"
	customError "github.com/segyhp/zakat-engine/pkg/errors"
	"github.com/segyhp/zakat-engine/pkg/utils"
	"github.com/segyhp/zakat-engine/pkg/validation"
)

// PaymentDueReminderDays is how far after a calculation its payment_due reminder is scheduled.
const PaymentDueReminderDays = 7

type ZakatService struct {
	CalculationRepo repository.CalculationRepository
	PaymentRepo     repository.PaymentRepository
	Tx              repository.Transactor
	Nisab           NisabProvider
	Reminders       ReminderScheduler
	Events          events.Sink
	logger          *slog.Logger
	overdueAfter    time.Duration
	now             func() time.Time
}

func NewZakatService(
	calculationRepo repository.CalculationRepository,
	paymentRepo repository.PaymentRepository,
	tx repository.Transactor,
	nisab NisabProvider,
	reminders ReminderScheduler,
	sink events.Sink,
	logger *slog.Logger,
	overdueAfter time.Duration,
) *ZakatService {
	return &ZakatService{
		CalculationRepo: calculationRepo,
		PaymentRepo:     paymentRepo,
		Tx:              tx,
		Nisab:           nisab,
		Reminders:       reminders,
		Events:          sink,
		logger:          orDefault(logger),
		overdueAfter:    overdueAfter,
		now:             time.Now,
	}
}

// Calculate runs the zakat calculation against the latest nisab rates for the
// snapshot's currency. Nothing is persisted.
func (s *ZakatService) Calculate(ctx context.Context, wealth domain.WealthSnapshot) (*domain.ZakatCalculationResult, error) {
	// Reject bad input before touching the store
	if err := calculator.Validate(wealth); err != nil {
		return nil, err
	}

	rates, err := s.Nisab.CurrentRates(ctx, utils.NormalizeCurrency(wealth.Currency))
	if err != nil {
		return nil, err
	}

	return calculator.Calculate(wealth, rates)
}

// RecordCalculation persists result for userID with status calculated.
// The payment_due reminder and the usage event are best-effort.
func (s *ZakatService) RecordCalculation(ctx context.Context, userID string, result *domain.ZakatCalculationResult, notes string) (*domain.ZakatCalculation, error) {
	if userID == "" {
		return nil, customError.WrapInvalidInput("user_id is required", nil)
	}
	if result == nil {
		return nil, customError.WrapInvalidInput("calculation result is required", nil)
	}

	now := s.now().UTC()
	calculation := &domain.ZakatCalculation{
		ID:                  uuid.New(),
		UserID:              userID,
		CalculationDate:     now,
		HijriYear:           utils.ApproximateHijriYear(now),
		TotalWealth:         result.TotalWealth,
		TotalDeductions:     result.TotalDeductions,
		NisabThreshold:      result.NisabThreshold,
		ZakatDue:            result.ZakatDue,
		Currency:            result.Currency,
		WealthBreakdown:     result.Wealth,
		DeductionsBreakdown: result.Deductions,
		PaymentStatus:       domain.PaymentStatusCalculated,
		AmountPaid:          decimal.Zero,
		Notes:               optionalString(notes),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.CalculationRepo.Create(ctx, calculation); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	s.schedulePaymentDue(ctx, calculation)

	events.Track(ctx, s.Events, s.logger, events.EventCalculationRecorded, events.CategoryZakat, map[string]any{
		"calculation_id": calculation.ID.String(),
		"user_id":        userID,
		"zakat_due":      calculation.ZakatDue.String(),
		"currency":       calculation.Currency,
		"total_wealth":   calculation.TotalWealth.String(),
	})

	return calculation, nil
}

// CalculateAndRecord calculates against the latest rates and records the result.
func (s *ZakatService) CalculateAndRecord(ctx context.Context, userID string, request domain.RecordCalculationRequest) (*domain.ZakatCalculation, error) {
	if err := validation.Struct(request); err != nil {
		return nil, customError.WrapInvalidInput(validation.Describe(err), err)
	}

	result, err := s.Calculate(ctx, request.WealthSnapshot)
	if err != nil {
		return nil, err
	}

	return s.RecordCalculation(ctx, userID, result, request.Notes)
}

func (s *ZakatService) schedulePaymentDue(ctx context.Context, calculation *domain.ZakatCalculation) {
	s.scheduleBestEffort(ctx, calculation, domain.ReminderRequest{
		CalculationID: uuid.NullUUID{UUID: calculation.ID, Valid: true},
		Type:          domain.ReminderTypePaymentDue,
		Title:         "Zakat payment due",
		Message: fmt.Sprintf("Your zakat of %s for %s AH is due. Please complete your payment.",
			utils.FormatMoney(calculation.ZakatDue, calculation.Currency), calculation.HijriYear),
		ScheduledDate: utils.CalculateDueDate(calculation.CalculationDate, PaymentDueReminderDays),
	})
}

func (s *ZakatService) scheduleBestEffort(ctx context.Context, calculation *domain.ZakatCalculation, request domain.ReminderRequest) {
	if s.Reminders == nil {
		return
	}
	if _, err := s.Reminders.Schedule(ctx, calculation.UserID, request); err != nil {
		s.logger.WarnContext(ctx, "reminder scheduling failed",
			slog.String("calculation_id", calculation.ID.String()),
			slog.String("user_id", calculation.UserID),
			slog.String("type", request.Type),
			slog.Any("error", err),
		)
	}
}

// RecordPayment stores a pending payment against a calculation owned by userID
// and reconciles the calculation's payment status in the same transaction.
func (s *ZakatService) RecordPayment(ctx context.Context, calculationID uuid.UUID, userID string, input domain.PaymentInput) (*domain.ZakatPayment, error) {
	if err := validation.Struct(input); err != nil {
		return nil, customError.WrapInvalidInput(validation.Describe(err), err)
	}

	var payment *domain.ZakatPayment
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		calculation, err := s.lockCalculation(ctx, calculationID)
		if err != nil {
			return err
		}
		if calculation.UserID != userID {
			return customError.WrapOwnershipMismatch(calculationID.String(), userID)
		}
		if input.Currency != "" && utils.NormalizeCurrency(input.Currency) != calculation.Currency {
			return customError.WrapInvalidInput(
				fmt.Sprintf("payment currency %s does not match calculation currency %s",
					utils.NormalizeCurrency(input.Currency), calculation.Currency), nil)
		}

		now := s.now().UTC()
		paymentDate := now
		if input.PaymentDate != nil {
			paymentDate = input.PaymentDate.UTC()
		}

		payment = &domain.ZakatPayment{
			ID:                 uuid.New(),
			CalculationID:      calculation.ID,
			UserID:             userID,
			Amount:             input.Amount,
			Currency:           calculation.Currency,
			PaymentMethod:      input.PaymentMethod,
			RecipientType:      input.RecipientType,
			RecipientName:      input.RecipientName,
			RecipientDetails:   optionalString(input.RecipientDetails),
			PaymentDate:        paymentDate,
			ReferenceNumber:    optionalString(input.ReferenceNumber),
			VerificationStatus: domain.VerificationStatusPending,
			CreatedAt:          now,
			UpdatedAt:          now,
		}

		if err := s.PaymentRepo.Create(ctx, payment); err != nil {
			return customError.WrapDatabaseError(err)
		}

		return s.reconcile(ctx, calculation, now)
	})
	if err != nil {
		return nil, storeError(err)
	}

	events.Track(ctx, s.Events, s.logger, events.EventPaymentRecorded, events.CategoryZakat, map[string]any{
		"payment_id":     payment.ID.String(),
		"calculation_id": calculationID.String(),
		"user_id":        userID,
		"amount":         payment.Amount.String(),
		"currency":       payment.Currency,
		"payment_method": payment.PaymentMethod,
		"recipient_type": payment.RecipientType,
	})

	return payment, nil
}

// VerifyPayment sets a payment to verified or rejected and reconciles its calculation.
// A verified payment is final.
func (s *ZakatService) VerifyPayment(ctx context.Context, paymentID uuid.UUID, request domain.VerifyPaymentRequest) (*domain.ZakatPayment, error) {
	if err := validation.Struct(request); err != nil {
		return nil, customError.WrapInvalidInput(validation.Describe(err), err)
	}

	var payment *domain.ZakatPayment
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		found, err := s.getPayment(ctx, paymentID)
		if err != nil {
			return err
		}

		calculation, err := s.lockCalculation(ctx, found.CalculationID)
		if err != nil {
			return err
		}

		// Re-read under the calculation lock
		payment, err = s.getPayment(ctx, paymentID)
		if err != nil {
			return err
		}
		if payment.VerificationStatus == domain.VerificationStatusVerified {
			return customError.WrapPaymentAlreadyVerified(paymentID.String())
		}

		now := s.now().UTC()
		if err := s.PaymentRepo.UpdateVerificationStatus(ctx, paymentID, request.Status, now); err != nil {
			return customError.WrapDatabaseError(err)
		}
		payment.VerificationStatus = request.Status
		payment.UpdatedAt = now

		return s.reconcile(ctx, calculation, now)
	})
	if err != nil {
		return nil, storeError(err)
	}

	events.Track(ctx, s.Events, s.logger, events.EventPaymentVerified, events.CategoryZakat, map[string]any{
		"payment_id":     paymentID.String(),
		"calculation_id": payment.CalculationID.String(),
		"status":         payment.VerificationStatus,
	})

	return payment, nil
}

// reconcile recomputes the calculation's payment summary from its stored payments.
// It never patches the previous summary incrementally.
func (s *ZakatService) reconcile(ctx context.Context, calculation *domain.ZakatCalculation, now time.Time) error {
	verified, err := s.PaymentRepo.GetTotalVerified(ctx, calculation.ID)
	if err != nil {
		return customError.WrapDatabaseError(err)
	}

	count, err := s.PaymentRepo.CountByCalculation(ctx, calculation.ID)
	if err != nil {
		return customError.WrapDatabaseError(err)
	}

	calculation.PaymentStatus = calculator.PaymentStatusFor(calculation.ZakatDue, verified, count, calculation.PaymentStatus)
	calculation.AmountPaid = verified

	if count > 0 {
		latest, err := s.PaymentRepo.GetLatestPayment(ctx, calculation.ID)
		if err != nil {
			return customError.WrapDatabaseError(err)
		}
		paymentDate := latest.PaymentDate
		method := latest.PaymentMethod
		calculation.PaymentDate = &paymentDate
		calculation.PaymentMethod = &method
		calculation.PaymentReference = latest.ReferenceNumber
	}
	calculation.UpdatedAt = now

	if err := s.CalculationRepo.UpdatePaymentSummary(ctx, calculation); err != nil {
		return customError.WrapDatabaseError(err)
	}

	return nil
}

func (s *ZakatService) lockCalculation(ctx context.Context, id uuid.UUID) (*domain.ZakatCalculation, error) {
	calculation, err := s.CalculationRepo.GetByIDForUpdate(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, customError.WrapCalculationNotFound(id.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return calculation, nil
}

func (s *ZakatService) getPayment(ctx context.Context, id uuid.UUID) (*domain.ZakatPayment, error) {
	payment, err := s.PaymentRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, customError.WrapPaymentNotFound(id.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return payment, nil
}

// ListCalculations returns one page of a user's calculations, newest first.
func (s *ZakatService) ListCalculations(ctx context.Context, userID string, page, pageSize int) (*domain.CalculationPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	total, err := s.CalculationRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	items, err := s.CalculationRepo.ListByUser(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	if items == nil {
		items = []*domain.ZakatCalculation{}
	}

	return &domain.CalculationPage{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

// GetCalculation returns a calculation owned by userID.
func (s *ZakatService) GetCalculation(ctx context.Context, userID string, calculationID uuid.UUID) (*domain.ZakatCalculation, error) {
	calculation, err := s.CalculationRepo.GetByID(ctx, calculationID)
	if err != nil {
		if isNotFound(err) {
			return nil, customError.WrapCalculationNotFound(calculationID.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}
	if calculation.UserID != userID {
		return nil, customError.WrapOwnershipMismatch(calculationID.String(), userID)
	}
	return calculation, nil
}

// ListPayments returns the payments of a calculation owned by userID, latest first.
func (s *ZakatService) ListPayments(ctx context.Context, userID string, calculationID uuid.UUID) ([]*domain.ZakatPayment, error) {
	if _, err := s.GetCalculation(ctx, userID, calculationID); err != nil {
		return nil, err
	}

	payments, err := s.PaymentRepo.ListByCalculation(ctx, calculationID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	if payments == nil {
		payments = []*domain.ZakatPayment{}
	}
	return payments, nil
}

// MarkOverdue moves unpaid calculations older than the overdue window to overdue
// and returns how many moved. Rows that fail are logged and skipped.
func (s *ZakatService) MarkOverdue(ctx context.Context) (int, error) {
	now := s.now().UTC()
	cutoff := now.Add(-s.overdueAfter)

	candidates, err := s.CalculationRepo.ListUnpaidBefore(ctx, cutoff)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	moved := 0
	for _, candidate := range candidates {
		var calculation *domain.ZakatCalculation
		err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
			locked, err := s.lockCalculation(ctx, candidate.ID)
			if err != nil {
				return err
			}
			// A payment may have landed since the listing
			if locked.PaymentStatus != domain.PaymentStatusCalculated {
				return nil
			}
			if !locked.ZakatDue.IsPositive() || !utils.IsDateOverdue(locked.CalculationDate, cutoff) {
				return nil
			}

			locked.PaymentStatus = domain.PaymentStatusOverdue
			locked.UpdatedAt = now
			if err := s.CalculationRepo.UpdatePaymentSummary(ctx, locked); err != nil {
				return customError.WrapDatabaseError(err)
			}
			calculation = locked
			return nil
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to mark calculation overdue",
				slog.String("calculation_id", candidate.ID.String()),
				slog.String("code", customError.CodeOf(err)),
				slog.Any("error", err),
			)
			continue
		}
		if calculation == nil {
			continue
		}

		moved++
		s.scheduleBestEffort(ctx, calculation, domain.ReminderRequest{
			CalculationID: uuid.NullUUID{UUID: calculation.ID, Valid: true},
			Type:          domain.ReminderTypePaymentOverdue,
			Title:         "Zakat payment overdue",
			Message: fmt.Sprintf("Your zakat of %s for %s AH is overdue.",
				utils.FormatMoney(calculation.ZakatDue, calculation.Currency), calculation.HijriYear),
			ScheduledDate: now,
		})
	}

	return moved, nil
}
