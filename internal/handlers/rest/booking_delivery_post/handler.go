package booking_delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"safiridocs/internal/pkg/middlewares/auth"
	"safiridocs/internal/service/request"
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

	var deliveryDTO DeliveryConfirmRequest
	err := json.NewDecoder(r.Body).Decode(&deliveryDTO)
	if err != nil || deliveryDTO.TrackingCode == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.ConfirmDelivery(r.Context(), requestID, actor.ID, deliveryDTO.TrackingCode)
	if err != nil {
		switch {
		case errors.Is(err, request.ErrInvalidTrackingCode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, request.ErrRequestNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, request.ErrInvalidStatusTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
