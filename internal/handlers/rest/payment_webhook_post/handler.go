package payment_webhook_post

import (
	"errors"
	"io"
	"net/http"

	"safiridocs/internal/service/payment"
	"safiridocs/pkg/logger"
)

// maxBodySize ограничивает тело вебхука: провайдер шлет небольшой JSON.
const maxBodySize = 1 << 20

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

// ServeHTTP - публичная точка входа для провайдера платежей, без
// пользовательской аутентификации: запрос проверяется подписью verif-hash.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.ConfirmWebhook(r.Context(), r.Header.Get("verif-hash"), body)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrWebhookVerification):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, payment.ErrInvalidWebhookPayload):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("confirm payment webhook")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}
