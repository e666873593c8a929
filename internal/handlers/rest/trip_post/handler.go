package trip_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"safiridocs/internal/entities"
	"safiridocs/internal/pkg/middlewares/auth"
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
	actor, ok := auth.UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var tripDTO TripCreate
	err := json.NewDecoder(r.Body).Decode(&tripDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	tripModifyEntity := entities.TripModify{
		DepartureCity:   &tripDTO.DepartureCity,
		DestinationCity: &tripDTO.DestinationCity,
		DepartureDate:   &tripDTO.DepartureDate,
		ArrivalDate:     &tripDTO.ArrivalDate,
		FlightNumber:    &tripDTO.FlightNumber,
		Airline:         &tripDTO.Airline,
		MaxDocuments:    tripDTO.MaxDocuments,
	}

	id, err := h.service.CreateTrip(r.Context(), actor, tripModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, trip.ErrMissingRequiredFields),
			errors.Is(err, trip.ErrInvalidDates),
			errors.Is(err, trip.ErrInvalidMaxDocuments):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, trip.ErrNotTraveler),
			errors.Is(err, trip.ErrNotVerified):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := TripCreateResponse{
		ID: id,
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
