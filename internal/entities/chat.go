package entities

import "time"

type ChatMessage struct {
	ID                string
	DeliveryRequestID string
	SenderID          string
	ReceiverID        string
	MessageText       string
	CreatedAt         time.Time
	ReadAt            *time.Time
}

type ChatMessageModify struct {
	ID                *string
	DeliveryRequestID *string
	SenderID          *string
	ReceiverID        *string
	MessageText       *string
}

// ChatMessageWithAuthor - сообщение вместе с именем отправителя.
type ChatMessageWithAuthor struct {
	Message    ChatMessage
	SenderName string
}
