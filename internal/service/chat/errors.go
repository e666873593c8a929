package chat

import (
	"errors"

	"safiridocs/internal/service/request"
)

var (
	ErrRequestNotFound = request.ErrRequestNotFound
	ErrChatUnavailable = errors.New("chat is not available for this request")
	ErrEmptyMessage    = errors.New("message text is empty")
	ErrMessageTooLong  = errors.New("message text is too long")
)
