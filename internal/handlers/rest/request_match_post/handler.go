package request_match_post

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

	requestID := mux.Vars(r)["id"]

	var matchDTO MatchRequest
	err := json.NewDecoder(r.Body).Decode(&matchDTO)
	if err != nil || matchDTO.TripID == "" || matchDTO.TravelerID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	match, err := h.service.Match(r.Context(), actor, requestID, matchDTO.TripID, matchDTO.TravelerID)
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

	response := MatchResponse{
		RequestID:    match.RequestID,
		TripID:       match.TripID,
		TravelerID:   match.TravelerID,
		TrackingCode: match.TrackingCode,
		MatchedAt:    match.MatchedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
