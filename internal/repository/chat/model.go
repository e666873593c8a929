package chat

import "time"

type ChatMessageDB struct {
	ID                string
	DeliveryRequestID string
	SenderID          string
	ReceiverID        string
	MessageText       string
	CreatedAt         time.Time
	ReadAt            *time.Time
}

type ChatMessageModifyDB struct {
	ID                *string
	DeliveryRequestID *string
	SenderID          *string
	ReceiverID        *string
	MessageText       *string
}

type ChatMessageWithAuthorDB struct {
	Message    ChatMessageDB
	SenderName string
}
