package chat

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/AlekSi/pointer"
	"safiridocs/internal/entities"
)

const maxMessageLength = 2000

// Chat - переписка, привязанная к заявке. Доступна только ее участникам
// и только после матча: до него у заявки нет второй стороны.
type Chat struct {
	repository Repository
	requests   RequestProvider
}

func New(repository Repository, requests RequestProvider) *Chat {
	return &Chat{
		repository: repository,
		requests:   requests,
	}
}

// Messages возвращает всю переписку по заявке в хронологическом порядке.
func (s *Chat) Messages(ctx context.Context, actor *entities.User, requestID string) ([]entities.ChatMessageWithAuthor, error) {
	if _, err := s.counterpart(ctx, actor, requestID); err != nil {
		return nil, err
	}

	messages, err := s.repository.GetByRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get messages: %w", err)
	}

	return messages, nil
}

// Send отправляет сообщение второй стороне заявки. Получатель не передается
// клиентом, а вычисляется: у чата заявки ровно два участника.
func (s *Chat) Send(ctx context.Context, actor *entities.User, requestID, text string) (*entities.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > maxMessageLength {
		return nil, ErrMessageTooLong
	}

	receiverID, err := s.counterpart(ctx, actor, requestID)
	if err != nil {
		return nil, err
	}

	message, err := s.repository.Create(ctx, entities.ChatMessageModify{
		DeliveryRequestID: pointer.To(requestID),
		SenderID:          pointer.To(actor.ID),
		ReceiverID:        pointer.To(receiverID),
		MessageText:       pointer.To(text),
	})
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	return message, nil
}

// MarkRead помечает прочитанными все входящие сообщения актора в чате заявки.
func (s *Chat) MarkRead(ctx context.Context, actor *entities.User, requestID string) error {
	if _, err := s.counterpart(ctx, actor, requestID); err != nil {
		return err
	}

	if err := s.repository.MarkRead(ctx, requestID, actor.ID); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}

	return nil
}

// counterpart проверяет участие актора в заявке и возвращает вторую сторону.
// Постороннему заявка выглядит несуществующей.
func (s *Chat) counterpart(ctx context.Context, actor *entities.User, requestID string) (string, error) {
	requestEntity, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return "", fmt.Errorf("get request: %w", err)
	}

	if requestEntity.MatchedTravelerID == nil {
		if requestEntity.SenderID == actor.ID {
			return "", ErrChatUnavailable
		}

		return "", ErrRequestNotFound
	}

	switch actor.ID {
	case requestEntity.SenderID:
		return *requestEntity.MatchedTravelerID, nil
	case *requestEntity.MatchedTravelerID:
		return requestEntity.SenderID, nil
	default:
		return "", ErrRequestNotFound
	}
}
