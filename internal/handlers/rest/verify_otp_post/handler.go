package verify_otp_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"safiridocs/internal/service/user"
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
	var verifyDTO VerifyOTPRequest
	err := json.NewDecoder(r.Body).Decode(&verifyDTO)
	if err != nil || verifyDTO.Phone == "" || verifyDTO.Code == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.VerifyOTP(r.Context(), verifyDTO.Phone, verifyDTO.Code)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidOTP):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := VerifyOTPResponse{
		Verified: true,
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
