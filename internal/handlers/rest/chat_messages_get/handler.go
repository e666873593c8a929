package chat_messages_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"safiridocs/internal/pkg/middlewares/auth"
	"safiridocs/internal/service/chat"
	"safiridocs/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	requestID := mux.Vars(r)["request_id"]

	messages, err := h.service.Messages(r.Context(), actor, requestID)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrRequestNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, chat.ErrChatUnavailable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		item := &messages[i]
		response = append(response, MessageResponse{
			ID:          item.Message.ID,
			SenderID:    item.Message.SenderID,
			SenderName:  item.SenderName,
			MessageText: item.Message.MessageText,
			CreatedAt:   item.Message.CreatedAt,
			ReadAt:      item.Message.ReadAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
