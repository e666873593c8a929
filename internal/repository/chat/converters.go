package chat

import (
	"safiridocs/internal/entities"
)

func ToDomain(m *ChatMessageDB) *entities.ChatMessage {
	if m == nil {
		return nil
	}

	return &entities.ChatMessage{
		ID:                m.ID,
		DeliveryRequestID: m.DeliveryRequestID,
		SenderID:          m.SenderID,
		ReceiverID:        m.ReceiverID,
		MessageText:       m.MessageText,
		CreatedAt:         m.CreatedAt,
		ReadAt:            m.ReadAt,
	}
}

func FromDomainModify(messageModify *entities.ChatMessageModify) *ChatMessageModifyDB {
	if messageModify == nil {
		return nil
	}
	messageDB := &ChatMessageModifyDB{}

	if messageModify.ID != nil {
		messageDB.ID = messageModify.ID
	}
	if messageModify.DeliveryRequestID != nil {
		messageDB.DeliveryRequestID = messageModify.DeliveryRequestID
	}
	if messageModify.SenderID != nil {
		messageDB.SenderID = messageModify.SenderID
	}
	if messageModify.ReceiverID != nil {
		messageDB.ReceiverID = messageModify.ReceiverID
	}
	if messageModify.MessageText != nil {
		messageDB.MessageText = messageModify.MessageText
	}

	return messageDB
}

func ToDomainWithAuthor(m *ChatMessageWithAuthorDB) *entities.ChatMessageWithAuthor {
	if m == nil {
		return nil
	}

	return &entities.ChatMessageWithAuthor{
		Message:    *ToDomain(&m.Message),
		SenderName: m.SenderName,
	}
}
