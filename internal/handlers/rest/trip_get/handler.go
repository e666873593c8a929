package trip_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"safiridocs/internal/service/trip"
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

	tripEntity, err := h.service.GetTrip(r.Context(), tripID)
	if err != nil {
		switch {
		case errors.Is(err, trip.ErrTripNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := TripResponse{
		ID:              tripEntity.ID,
		TravelerID:      tripEntity.TravelerID,
		DepartureCity:   tripEntity.DepartureCity,
		DestinationCity: tripEntity.DestinationCity,
		DepartureDate:   tripEntity.DepartureDate,
		ArrivalDate:     tripEntity.ArrivalDate,
		FlightNumber:    tripEntity.FlightNumber,
		Airline:         tripEntity.Airline,
		MaxDocuments:    tripEntity.MaxDocuments,
		AvailableSlots:  tripEntity.AvailableSlots,
		Status:          tripEntity.Status.String(),
		CreatedAt:       tripEntity.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
