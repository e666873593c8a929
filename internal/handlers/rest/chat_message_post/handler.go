package chat_message_post

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

	var sendDTO SendRequest
	err := json.NewDecoder(r.Body).Decode(&sendDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	message, err := h.service.Send(r.Context(), actor, requestID, sendDTO.MessageText)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage),
			errors.Is(err, chat.ErrMessageTooLong):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, chat.ErrRequestNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, chat.ErrChatUnavailable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := SendResponse{
		ID:          message.ID,
		SenderID:    message.SenderID,
		ReceiverID:  message.ReceiverID,
		MessageText: message.MessageText,
		CreatedAt:   message.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
