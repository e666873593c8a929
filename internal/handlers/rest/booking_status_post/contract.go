//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_status_post_test
package booking_status_post

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
	MarkInTransit(ctx context.Context, requestID, travelerID string, target entities.RequestStatusType) error
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}
