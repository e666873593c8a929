//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=review_post_test
package review_post

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
	Submit(ctx context.Context, actor *entities.User, requestID string, rating int, text string) (string, error)
}

type SubmitRequest struct {
	RequestID  string `json:"request_id"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
}

type SubmitResponse struct {
	ID string `json:"id"`
}
