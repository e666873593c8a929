package chat

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"safiridocs/internal/entities"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, messageModifyEntity entities.ChatMessageModify) (*entities.ChatMessage, error) {
	messageModifyModel := FromDomainModify(&messageModifyEntity)
	query := `INSERT INTO chat_messages (delivery_request_id, sender_id, receiver_id, message_text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, delivery_request_id, sender_id, receiver_id, message_text, created_at, read_at`

	var messageModel ChatMessageDB
	err := r.querier.QueryRow(
		ctx,
		query,
		messageModifyModel.DeliveryRequestID,
		messageModifyModel.SenderID,
		messageModifyModel.ReceiverID,
		messageModifyModel.MessageText,
	).Scan(
		&messageModel.ID,
		&messageModel.DeliveryRequestID,
		&messageModel.SenderID,
		&messageModel.ReceiverID,
		&messageModel.MessageText,
		&messageModel.CreatedAt,
		&messageModel.ReadAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected chat repository create error: %w", err)
	}

	return ToDomain(&messageModel), nil
}

func (r *Repository) GetByRequest(ctx context.Context, requestID string) ([]entities.ChatMessageWithAuthor, error) {
	query := `
		SELECT m.id, m.delivery_request_id, m.sender_id, m.receiver_id,
			m.message_text, m.created_at, m.read_at,
			u.full_name
		FROM chat_messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.delivery_request_id = $1
		ORDER BY m.created_at ASC
	`

	rows, err := r.querier.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("unexpected chat repository getbyrequest error: %w", err)
	}
	defer rows.Close()

	messages := make([]entities.ChatMessageWithAuthor, 0, 16)
	for rows.Next() {
		var messageModel ChatMessageWithAuthorDB
		err := rows.Scan(
			&messageModel.Message.ID,
			&messageModel.Message.DeliveryRequestID,
			&messageModel.Message.SenderID,
			&messageModel.Message.ReceiverID,
			&messageModel.Message.MessageText,
			&messageModel.Message.CreatedAt,
			&messageModel.Message.ReadAt,
			&messageModel.SenderName,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected chat repository getbyrequest error: %w", err)
		}
		messages = append(messages, *ToDomainWithAuthor(&messageModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected chat repository getbyrequest error: %w", err)
	}

	return messages, nil
}

// MarkRead помечает все непрочитанные входящие сообщения получателя в чате
// заявки. Ноль затронутых строк - не ошибка: читать можно и пустой чат.
func (r *Repository) MarkRead(ctx context.Context, requestID, receiverID string) error {
	query := `UPDATE chat_messages
		SET read_at = NOW()
		WHERE delivery_request_id = $1
		  AND receiver_id = $2
		  AND read_at IS NULL`

	_, err := r.querier.Exec(ctx, query, requestID, receiverID)
	if err != nil {
		return fmt.Errorf("unexpected chat repository mark read error: %w", err)
	}

	return nil
}
