package payment_status_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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

	paymentID := mux.Vars(r)["id"]

	paymentEntity, err := h.service.Status(r.Context(), actor, paymentID)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrPaymentNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := PaymentStatusResponse{
		PaymentID:         paymentEntity.ID,
		DeliveryRequestID: paymentEntity.DeliveryRequestID,
		TotalAmount:       paymentEntity.TotalAmount.StringFixed(2),
		PlatformFee:       paymentEntity.PlatformFee.StringFixed(2),
		TravelerPayout:    paymentEntity.TravelerPayout.StringFixed(2),
		PaymentMethod:     paymentEntity.PaymentMethod.String(),
		EscrowStatus:      paymentEntity.EscrowStatus.String(),
		PayoutStatus:      paymentEntity.PayoutStatus.String(),
		PaidAt:            paymentEntity.PaidAt,
		ReleasedAt:        paymentEntity.ReleasedAt,
		CreatedAt:         paymentEntity.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
