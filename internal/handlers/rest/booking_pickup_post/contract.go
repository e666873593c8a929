//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_pickup_post_test
package booking_pickup_post

import (
	"context"

	"safiridocs/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ConfirmPickup(ctx context.Context, requestID, travelerID string) error
}
