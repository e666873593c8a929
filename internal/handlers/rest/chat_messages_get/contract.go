//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_messages_get_test
package chat_messages_get

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
	Messages(ctx context.Context, actor *entities.User, requestID string) ([]entities.ChatMessageWithAuthor, error)
}

type MessageResponse struct {
	ID          string     `json:"id"`
	SenderID    string     `json:"sender_id"`
	SenderName  string     `json:"sender_name"`
	MessageText string     `json:"message_text"`
	CreatedAt   time.Time  `json:"created_at"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
}
