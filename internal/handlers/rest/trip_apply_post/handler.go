package trip_apply_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"safiridocs/internal/pkg/middlewares/auth"
	"safiridocs/internal/service/matching"
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

	tripID := mux.Vars(r)["id"]

	var applyDTO ApplyRequest
	err := json.NewDecoder(r.Body).Decode(&applyDTO)
	if err != nil || applyDTO.RequestID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	match, err := h.service.Apply(r.Context(), actor, tripID, applyDTO.RequestID)
	if err != nil {
		switch {
		case errors.Is(err, matching.ErrRequestNotFound),
			errors.Is(err, matching.ErrTripNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, matching.ErrAlreadyMatched),
			errors.Is(err, matching.ErrNoAvailableSlots),
			errors.Is(err, matching.ErrTripNotActive):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, matching.ErrNotVerified),
			errors.Is(err, matching.ErrCounterpartRejected):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := ApplyResponse{
		RequestID:  match.RequestID,
		TripID:     match.TripID,
		TravelerID: match.TravelerID,
		MatchedAt:  match.MatchedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
