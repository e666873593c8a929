package trips_get

import (
	"encoding/json"
	"net/http"

	"safiridocs/internal/entities"
	"safiridocs/internal/pkg/middlewares/auth"
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

	trips, err := h.service.GetTrips(r.Context(), actor.ID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]TripResponse, 0, len(trips))
	for i := range trips {
		response = append(response, toTripResponse(&trips[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toTripResponse(tripEntity *entities.Trip) TripResponse {
	return TripResponse{
		ID:              tripEntity.ID,
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
}
