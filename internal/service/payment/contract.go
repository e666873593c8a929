//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"safiridocs/internal/entities"
	"safiridocs/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, payment entities.Payment) (*entities.Payment, error)
	GetByID(ctx context.Context, paymentID string) (*entities.Payment, error)
	GetByRequestID(ctx context.Context, requestID string) (*entities.Payment, error)
	GetByTxRef(ctx context.Context, txRef string) (*entities.Payment, error)
	// MarkHeld переводит escrow pending -> held; для других состояний
	// возвращает ErrInvalidEscrowState.
	MarkHeld(ctx context.Context, requestID string) error
	// MarkReleased переводит escrow held -> released.
	MarkReleased(ctx context.Context, requestID string) error
	// MarkRefunded переводит escrow pending|held -> refunded.
	MarkRefunded(ctx context.Context, requestID string) error
	// MarkPayoutProcessing фиксирует отправленный перевод провайдеру.
	MarkPayoutProcessing(ctx context.Context, paymentID, providerPayoutID string) error
	// MarkPayoutCompleted переводит выплату processing -> completed.
	MarkPayoutCompleted(ctx context.Context, paymentID string) error
}

type RequestProvider interface {
	GetByID(ctx context.Context, requestID string) (*entities.DeliveryRequest, error)
}

type UserProvider interface {
	GetUser(ctx context.Context, userID string) (*entities.User, error)
}

type Gateway interface {
	CreateCharge(ctx context.Context, charge entities.GatewayCharge) (*entities.GatewayChargeResult, error)
	VerifyTransaction(ctx context.Context, txRef string) (*entities.GatewayTransaction, error)
	CreateTransfer(ctx context.Context, transfer entities.GatewayTransfer) (*entities.GatewayTransferResult, error)
}

// WebhookVerifier сверяет подпись входящего вебхука с секретом в
// конфигурации. Сравнение обязано быть constant-time.
type WebhookVerifier interface {
	Verify(signature string) bool
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
