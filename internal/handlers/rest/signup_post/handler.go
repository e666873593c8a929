package signup_post

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
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var signupDTO SignupRequest
	err := json.NewDecoder(r.Body).Decode(&signupDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	roleType := entities.UserRoleType(signupDTO.Role)
	userModifyEntity := entities.UserModify{
		Email:    &signupDTO.Email,
		Phone:    &signupDTO.Phone,
		FullName: &signupDTO.FullName,
		Role:     &roleType,
	}

	id, err := h.service.Register(r.Context(), userModifyEntity, signupDTO.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingRequiredFields),
			errors.Is(err, user.ErrInvalidEmail),
			errors.Is(err, user.ErrInvalidPhone),
			errors.Is(err, user.ErrInvalidRole),
			errors.Is(err, user.ErrWeakPassword):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, user.ErrUserExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := SignupResponse{
		UserID:  id,
		OTPSent: true,
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
