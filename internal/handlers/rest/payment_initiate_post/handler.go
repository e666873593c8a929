package payment_initiate_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"safiridocs/internal/entities"
	"safiridocs/internal/pkg/middlewares/auth"
	"safiridocs/internal/service/payment"
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

	var initiateDTO InitiateRequest
	err := json.NewDecoder(r.Body).Decode(&initiateDTO)
	if err != nil || initiateDTO.DeliveryRequestID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, paymentLink, err := h.service.Initiate(r.Context(), actor, initiateDTO.DeliveryRequestID, entities.PaymentMethodType(initiateDTO.PaymentMethod))
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidPaymentMethod):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, payment.ErrRequestNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, payment.ErrPaymentAlreadyExists),
			errors.Is(err, payment.ErrRequestNotMatched):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, payment.ErrGatewayUnavailable):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := InitiateResponse{
		PaymentID:      created.ID,
		TxRef:          created.ProviderTxRef,
		TotalAmount:    created.TotalAmount.StringFixed(2),
		PlatformFee:    created.PlatformFee.StringFixed(2),
		TravelerPayout: created.TravelerPayout.StringFixed(2),
		EscrowStatus:   created.EscrowStatus.String(),
		PaymentLink:    paymentLink,
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
