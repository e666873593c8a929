//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_test
package request

import (
	"context"

	"safiridocs/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, requestModifyEntity entities.RequestModify) (string, error)
	GetByID(ctx context.Context, id string) (*entities.DeliveryRequest, error)
	GetBySender(ctx context.Context, senderID string) ([]entities.DeliveryRequest, error)
	GetOpen(ctx context.Context, filter entities.RequestFilter) ([]entities.RequestCandidate, error)

	// Переходы статуса выполнены как условные UPDATE: ноль затронутых строк
	// означает гонку или неподходящее текущее состояние.
	MarkPickedUp(ctx context.Context, id string) error
	MarkInTransit(ctx context.Context, id string) error
	MarkDelivered(ctx context.Context, id string) error
	Cancel(ctx context.Context, id, reason string) error
}

type TripService interface {
	RestoreTripSlot(ctx context.Context, tripID string) error
}

type PaymentService interface {
	ReleaseEscrow(ctx context.Context, requestID string) error
	RefundEscrow(ctx context.Context, requestID string) error
}

type UserService interface {
	RecordSuccessfulDelivery(ctx context.Context, travelerID string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
