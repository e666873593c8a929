//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_message_post_test
package chat_message_post

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
	Send(ctx context.Context, actor *entities.User, requestID, text string) (*entities.ChatMessage, error)
}

type SendRequest struct {
	MessageText string `json:"message_text"`
}

type SendResponse struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	ReceiverID  string    `json:"receiver_id"`
	MessageText string    `json:"message_text"`
	CreatedAt   time.Time `json:"created_at"`
}
