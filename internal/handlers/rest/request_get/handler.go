package request_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"safiridocs/internal/pkg/middlewares/auth"
	"safiridocs/internal/service/request"
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

	requestEntity, err := h.service.GetRequest(r.Context(), requestID)
	if err != nil {
		switch {
		case errors.Is(err, request.ErrRequestNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := RequestResponse{
		ID:                  requestEntity.ID,
		SenderID:            requestEntity.SenderID,
		DepartureCity:       requestEntity.DepartureCity,
		DestinationCity:     requestEntity.DestinationCity,
		PickupAddress:       requestEntity.PickupAddress,
		DeliveryAddress:     requestEntity.DeliveryAddress,
		DocumentDescription: requestEntity.DocumentDescription,
		DocumentType:        requestEntity.DocumentType,
		OfferedAmount:       requestEntity.OfferedAmount.StringFixed(2),
		Urgency:             requestEntity.Urgency.String(),
		Status:              requestEntity.Status.String(),
		MatchedTripID:       requestEntity.MatchedTripID,
		MatchedTravelerID:   requestEntity.MatchedTravelerID,
		MatchedAt:           requestEntity.MatchedAt,
		PickedUpAt:          requestEntity.PickedUpAt,
		DeliveredAt:         requestEntity.DeliveredAt,
		CreatedAt:           requestEntity.CreatedAt,
	}

	// Код отслеживания видит только отправитель: перевозчик получает его
	// из рук в руки при передаче документов.
	if requestEntity.SenderID == actor.ID {
		response.TrackingCode = requestEntity.TrackingCode
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
