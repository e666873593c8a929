package me_get

import (
	"encoding/json"
	"net/http"

	"safiridocs/internal/pkg/middlewares/auth"
	"safiridocs/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userEntity, ok := auth.UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	response := MeResponse{
		ID:                   userEntity.ID,
		Email:                userEntity.Email,
		Phone:                userEntity.Phone,
		FullName:             userEntity.FullName,
		Role:                 userEntity.Role.String(),
		VerificationStatus:   userEntity.VerificationStatus.String(),
		AccountStatus:        userEntity.AccountStatus.String(),
		TrustScore:           userEntity.TrustScore,
		AverageRating:        userEntity.AverageRating.StringFixed(2),
		TotalDeliveries:      userEntity.TotalDeliveries,
		SuccessfulDeliveries: userEntity.SuccessfulDeliveries,
		PhoneVerified:        userEntity.PhoneVerifiedAt != nil,
		CreatedAt:            userEntity.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
