package request_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"safiridocs/internal/entities"
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

	var requestDTO RequestCreate
	err := json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	offeredAmount := decimal.NewFromFloat(requestDTO.OfferedAmount)
	requestModifyEntity := entities.RequestModify{
		DepartureCity:       &requestDTO.DepartureCity,
		DestinationCity:     &requestDTO.DestinationCity,
		PickupAddress:       &requestDTO.PickupAddress,
		DeliveryAddress:     &requestDTO.DeliveryAddress,
		DocumentDescription: &requestDTO.DocumentDescription,
		DocumentType:        &requestDTO.DocumentType,
		OfferedAmount:       &offeredAmount,
	}
	if requestDTO.Urgency != "" {
		urgencyType := entities.UrgencyType(requestDTO.Urgency)
		requestModifyEntity.Urgency = &urgencyType
	}

	id, err := h.service.CreateRequest(r.Context(), actor, requestModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, request.ErrMissingRequiredFields),
			errors.Is(err, request.ErrInvalidAmount),
			errors.Is(err, request.ErrInvalidUrgency):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, request.ErrNotSender),
			errors.Is(err, request.ErrNotVerified):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := RequestCreateResponse{
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
