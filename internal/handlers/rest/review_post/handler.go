package review_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"safiridocs/internal/pkg/middlewares/auth"
	"safiridocs/internal/service/review"
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

	var submitDTO SubmitRequest
	err := json.NewDecoder(r.Body).Decode(&submitDTO)
	if err != nil || submitDTO.RequestID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id, err := h.service.Submit(r.Context(), actor, submitDTO.RequestID, submitDTO.Rating, submitDTO.ReviewText)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrInvalidRating):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, review.ErrRequestNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, review.ErrNotParticipant):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, review.ErrAlreadyReviewed),
			errors.Is(err, review.ErrRequestNotDone):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(SubmitResponse{ID: id})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
