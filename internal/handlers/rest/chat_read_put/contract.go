//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_read_put_test
package chat_read_put

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
	MarkRead(ctx context.Context, actor *entities.User, requestID string) error
}
