//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"safiridocs/internal/entities"
	"safiridocs/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, userModifyEntity entities.UserModify) (string, error)
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdateLastLogin(ctx context.Context, id string) error
	ConfirmPhone(ctx context.Context, phone, code string) error
	BumpTravelerStats(ctx context.Context, travelerID string) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

type OTPSender interface {
	SendOTP(ctx context.Context, phone, code string) error
}

type CodeFactory interface {
	Generate() (string, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
