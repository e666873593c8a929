//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_initiate_post_test
package payment_initiate_post

import (
	"context"

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
	Initiate(ctx context.Context, actor *entities.User, requestID string, method entities.PaymentMethodType) (*entities.Payment, string, error)
}

type InitiateRequest struct {
	DeliveryRequestID string `json:"delivery_request_id"`
	PaymentMethod     string `json:"payment_method"`
}

type InitiateResponse struct {
	PaymentID      string `json:"payment_id"`
	TxRef          string `json:"tx_ref"`
	TotalAmount    string `json:"total_amount"`
	PlatformFee    string `json:"platform_fee"`
	TravelerPayout string `json:"traveler_payout"`
	EscrowStatus   string `json:"escrow_status"`
	PaymentLink    string `json:"payment_link,omitempty"`
}
