package login_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"safiridocs/internal/entities"
	"safiridocs/internal/service/user"
	"safiridocs/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	tokens  TokenIssuer
}

func New(log handlerLogger, service Service, tokens TokenIssuer) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		tokens:  tokens,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var loginDTO LoginRequest
	err := json.NewDecoder(r.Body).Decode(&loginDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	userEntity, err := h.service.Authenticate(r.Context(), loginDTO.Email, loginDTO.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidCredentials):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, user.ErrAccountInactive):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	tokenString, err := h.tokens.Issue(userEntity)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := LoginResponse{
		Token: tokenString,
		User:  toUserResponse(userEntity),
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toUserResponse(userEntity *entities.User) UserResponse {
	return UserResponse{
		ID:                 userEntity.ID,
		Email:              userEntity.Email,
		Phone:              userEntity.Phone,
		FullName:           userEntity.FullName,
		Role:               userEntity.Role.String(),
		VerificationStatus: userEntity.VerificationStatus.String(),
		TrustScore:         userEntity.TrustScore,
		AverageRating:      userEntity.AverageRating.StringFixed(2),
		TotalDeliveries:    userEntity.TotalDeliveries,
		PhoneVerified:      userEntity.PhoneVerifiedAt != nil,
		CreatedAt:          userEntity.CreatedAt,
	}
}
