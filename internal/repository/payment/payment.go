package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"safiridocs/internal/entities"
	"safiridocs/internal/repository"
	"safiridocs/internal/service/payment"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

const paymentColumns = `id, delivery_request_id, sender_id, traveler_id,
		total_amount::text, platform_fee::text, traveler_payout::text,
		payment_method, escrow_status, payout_status,
		provider_tx_ref, provider_payment_id, provider_payout_id,
		paid_at, released_at, created_at`

func (r *Repository) Create(ctx context.Context, paymentEntity entities.Payment) (*entities.Payment, error) {
	query := `INSERT INTO payments (delivery_request_id, sender_id, traveler_id,
			total_amount, platform_fee, traveler_payout,
			payment_method, provider_tx_ref, provider_payment_id)
		VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6::numeric, $7, $8, $9)
		RETURNING ` + paymentColumns

	var paymentModel PaymentDB
	err := scanPayment(r.querier.QueryRow(
		ctx,
		query,
		paymentEntity.DeliveryRequestID,
		paymentEntity.SenderID,
		paymentEntity.TravelerID,
		paymentEntity.TotalAmount.String(),
		paymentEntity.PlatformFee.String(),
		paymentEntity.TravelerPayout.String(),
		paymentEntity.PaymentMethod.String(),
		paymentEntity.ProviderTxRef,
		paymentEntity.ProviderPaymentID,
	), &paymentModel)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, payment.ErrPaymentAlreadyExists
		}
		return nil, fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return ToDomain(&paymentModel), nil
}

func (r *Repository) GetByID(ctx context.Context, paymentID string) (*entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE id = $1`

	return r.getOne(ctx, query, paymentID)
}

func (r *Repository) GetByRequestID(ctx context.Context, requestID string) (*entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE delivery_request_id = $1`

	return r.getOne(ctx, query, requestID)
}

func (r *Repository) GetByTxRef(ctx context.Context, txRef string) (*entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE provider_tx_ref = $1`

	return r.getOne(ctx, query, txRef)
}

func (r *Repository) MarkHeld(ctx context.Context, requestID string) error {
	query := `UPDATE payments
		SET escrow_status = 'held',
			paid_at = NOW()
		WHERE delivery_request_id = $1
		  AND escrow_status = 'pending'`

	result, err := r.querier.Exec(ctx, query, requestID)
	if err != nil {
		return fmt.Errorf("unexpected payment repository mark held error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payment.ErrInvalidEscrowState
	}

	return nil
}

// MarkReleased допускает релиз и из pending: доставка не должна зависнуть
// из-за не дошедшего вебхука.
func (r *Repository) MarkReleased(ctx context.Context, requestID string) error {
	query := `UPDATE payments
		SET escrow_status = 'released',
			released_at = NOW()
		WHERE delivery_request_id = $1
		  AND escrow_status IN ('pending', 'held')`

	return r.escrowTransition(ctx, query, requestID)
}

func (r *Repository) MarkRefunded(ctx context.Context, requestID string) error {
	query := `UPDATE payments
		SET escrow_status = 'refunded'
		WHERE delivery_request_id = $1
		  AND escrow_status IN ('pending', 'held')`

	return r.escrowTransition(ctx, query, requestID)
}

func (r *Repository) MarkPayoutProcessing(ctx context.Context, paymentID, providerPayoutID string) error {
	query := `UPDATE payments
		SET payout_status = 'processing',
			provider_payout_id = $2
		WHERE id = $1
		  AND payout_status != 'completed'`

	result, err := r.querier.Exec(ctx, query, paymentID, providerPayoutID)
	if err != nil {
		return fmt.Errorf("unexpected payment repository mark payout error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payment.ErrPayoutAlreadyCompleted
	}

	return nil
}

func (r *Repository) MarkPayoutCompleted(ctx context.Context, paymentID string) error {
	query := `UPDATE payments
		SET payout_status = 'completed'
		WHERE id = $1
		  AND payout_status = 'processing'`

	result, err := r.querier.Exec(ctx, query, paymentID)
	if err != nil {
		return fmt.Errorf("unexpected payment repository complete payout error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payment.ErrPayoutNotProcessing
	}

	return nil
}

// escrowTransition различает отсутствие платежа и неподходящее состояние:
// для наличных расчетов платежа в базе нет, и это не ошибка вызывающего.
func (r *Repository) escrowTransition(ctx context.Context, query, requestID string) error {
	result, err := r.querier.Exec(ctx, query, requestID)
	if err != nil {
		return fmt.Errorf("unexpected payment repository escrow transition error: %w", err)
	}
	if result.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	err = r.querier.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM payments WHERE delivery_request_id = $1)`,
		requestID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected payment repository escrow transition error: %w", err)
	}
	if !exists {
		return payment.ErrPaymentNotFound
	}

	return payment.ErrInvalidEscrowState
}

func (r *Repository) getOne(ctx context.Context, query, arg string) (*entities.Payment, error) {
	var paymentModel PaymentDB
	err := scanPayment(r.querier.QueryRow(ctx, query, arg), &paymentModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}

		return nil, fmt.Errorf("unexpected payment repository get error: %w", err)
	}

	return ToDomain(&paymentModel), nil
}

func scanPayment(row pgx.Row, paymentModel *PaymentDB) error {
	return row.Scan(
		&paymentModel.ID,
		&paymentModel.DeliveryRequestID,
		&paymentModel.SenderID,
		&paymentModel.TravelerID,
		&paymentModel.TotalAmount,
		&paymentModel.PlatformFee,
		&paymentModel.TravelerPayout,
		&paymentModel.PaymentMethod,
		&paymentModel.EscrowStatus,
		&paymentModel.PayoutStatus,
		&paymentModel.ProviderTxRef,
		&paymentModel.ProviderPaymentID,
		&paymentModel.ProviderPayoutID,
		&paymentModel.PaidAt,
		&paymentModel.ReleasedAt,
		&paymentModel.CreatedAt,
	)
}
