package trip_requests_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
	tripID := mux.Vars(r)["id"]

	candidates, err := h.service.RequestsForTrip(r.Context(), tripID)
	if err != nil {
		switch {
		case errors.Is(err, matching.ErrTripNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]RequestCandidateResponse, 0, len(candidates))
	for i := range candidates {
		candidate := &candidates[i]
		response = append(response, RequestCandidateResponse{
			RequestID:           candidate.Request.ID,
			DepartureCity:       candidate.Request.DepartureCity,
			DestinationCity:     candidate.Request.DestinationCity,
			DocumentDescription: candidate.Request.DocumentDescription,
			DocumentType:        candidate.Request.DocumentType,
			OfferedAmount:       candidate.Request.OfferedAmount.StringFixed(2),
			Urgency:             candidate.Request.Urgency.String(),
			SenderName:          candidate.SenderName,
			SenderTrustScore:    candidate.TrustScore,
			CreatedAt:           candidate.Request.CreatedAt,
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
