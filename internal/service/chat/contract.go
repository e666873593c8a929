//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_test
package chat

import (
	"context"

	"safiridocs/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, messageModifyEntity entities.ChatMessageModify) (*entities.ChatMessage, error)
	GetByRequest(ctx context.Context, requestID string) ([]entities.ChatMessageWithAuthor, error)
	MarkRead(ctx context.Context, requestID, receiverID string) error
}

type RequestProvider interface {
	GetByID(ctx context.Context, requestID string) (*entities.DeliveryRequest, error)
}
