package user

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"safiridocs/internal/entities"
	"safiridocs/pkg/logger"
)

type User struct {
	log        serviceLogger
	repository Repository
	hasher     PasswordHasher
	otpSender  OTPSender
	codes      CodeFactory
	txManager  TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	hasher PasswordHasher,
	otpSender OTPSender,
	codes CodeFactory,
	txManager TxManager,
) *User {
	return &User{
		log:        log,
		repository: repository,
		hasher:     hasher,
		otpSender:  otpSender,
		codes:      codes,
		txManager:  txManager,
	}
}

// Register создает пользователя и отправляет OTP на телефон.
// Недоставленный OTP не откатывает регистрацию: код можно запросить заново,
// а сам OTP по контракту не блокирует логин.
func (s *User) Register(ctx context.Context, userModify entities.UserModify, password string) (string, error) {
	if userModify.Email == nil ||
		userModify.Phone == nil ||
		userModify.FullName == nil ||
		userModify.Role == nil ||
		password == "" {
		return "", ErrMissingRequiredFields
	}

	if !isValidEmail(*userModify.Email) {
		return "", ErrInvalidEmail
	}
	if !isValidPhone(*userModify.Phone) {
		return "", ErrInvalidPhone
	}
	if !isValidName(*userModify.FullName) {
		return "", ErrMissingRequiredFields
	}
	if !isValidRole(userModify.Role.String()) {
		return "", ErrInvalidRole
	}
	if len(password) < minPasswordLength {
		return "", ErrWeakPassword
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	otp, err := s.codes.Generate()
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}

	userModify.ID = pointer.To(uuid.NewString())
	userModify.PasswordHash = &passwordHash
	userModify.OTPCode = &otp

	id, err := s.repository.Create(ctx, userModify)
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	if err := s.otpSender.SendOTP(ctx, *userModify.Phone, otp); err != nil {
		s.log.With(
			logger.NewField("user_id", id),
			logger.NewField("error", err),
		).Warn("failed to deliver otp")
	}

	return id, nil
}

// Authenticate проверяет пароль и статус аккаунта, обновляет last_login_at.
// Несуществующий email и неверный пароль неразличимы для вызывающего.
func (s *User) Authenticate(ctx context.Context, email, password string) (*entities.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingRequiredFields
	}

	userEntity, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(password, userEntity.PasswordHash)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	if !userEntity.IsActive() {
		return nil, ErrAccountInactive
	}

	if err := s.repository.UpdateLastLogin(ctx, userEntity.ID); err != nil {
		return nil, fmt.Errorf("update last login: %w", err)
	}

	return userEntity, nil
}

func (s *User) VerifyOTP(ctx context.Context, phone, code string) error {
	if !isValidPhone(phone) || code == "" {
		return ErrInvalidOTP
	}

	if err := s.repository.ConfirmPhone(ctx, phone, code); err != nil {
		return fmt.Errorf("confirm phone: %w", err)
	}

	return nil
}

func (s *User) GetUser(ctx context.Context, id string) (*entities.User, error) {
	userEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return userEntity, nil
}

// RecordSuccessfulDelivery поднимает счетчики и trust score перевозчика
// (+5, не выше 95). Вызывается из транзакции подтверждения доставки.
func (s *User) RecordSuccessfulDelivery(ctx context.Context, travelerID string) error {
	if err := s.repository.BumpTravelerStats(ctx, travelerID); err != nil {
		return fmt.Errorf("bump traveler stats: %w", err)
	}
	return nil
}
