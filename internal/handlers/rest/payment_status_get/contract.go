//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_status_get_test
package payment_status_get

import (
	"context"
	"time"

	"safiridocs/internal/entities"
	"safiridocs/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Status(ctx context.Context, actor *entities.User, paymentID string) (*entities.Payment, error)
}

type PaymentStatusResponse struct {
	PaymentID         string     `json:"payment_id"`
	DeliveryRequestID string     `json:"delivery_request_id"`
	TotalAmount       string     `json:"total_amount"`
	PlatformFee       string     `json:"platform_fee"`
	TravelerPayout    string     `json:"traveler_payout"`
	PaymentMethod     string     `json:"payment_method"`
	EscrowStatus      string     `json:"escrow_status"`
	PayoutStatus      string     `json:"payout_status"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
	ReleasedAt        *time.Time `json:"released_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}
