//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_refuse_post_test
package booking_refuse_post

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
	RefuseDelivery(ctx context.Context, requestID, travelerID, reason string) error
}

type RefuseRequest struct {
	Reason string `json:"reason"`
}
