//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_payout_post_test
package payment_payout_post

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
	Payout(ctx context.Context, actor *entities.User, paymentID string) error
}
