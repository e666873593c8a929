//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_delete_test
package request_delete

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
	CancelRequest(ctx context.Context, requestID, senderID string) error
}
