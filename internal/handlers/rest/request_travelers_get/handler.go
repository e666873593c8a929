package request_travelers_get

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
	requestID := mux.Vars(r)["id"]

	candidates, err := h.service.TravelersForRequest(r.Context(), requestID)
	if err != nil {
		switch {
		case errors.Is(err, matching.ErrRequestNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]TravelerCandidateResponse, 0, len(candidates))
	for i := range candidates {
		candidate := &candidates[i]
		response = append(response, TravelerCandidateResponse{
			TripID:          candidate.Trip.ID,
			TravelerID:      candidate.Trip.TravelerID,
			TravelerName:    candidate.TravelerName,
			TrustScore:      candidate.TrustScore,
			AverageRating:   candidate.AverageRating.StringFixed(2),
			TotalDeliveries: candidate.TotalDeliveries,
			DepartureDate:   candidate.Trip.DepartureDate,
			ArrivalDate:     candidate.Trip.ArrivalDate,
			FlightNumber:    candidate.Trip.FlightNumber,
			Airline:         candidate.Trip.Airline,
			AvailableSlots:  candidate.Trip.AvailableSlots,
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
