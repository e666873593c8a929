//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=login_post_test
package login_post

import (
	"context"
	"time"

	"safiridocs/internal/entities"
	"safiridocs/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Authenticate(ctx context.Context, email, password string) (*entities.User, error)
}

type TokenIssuer interface {
	Issue(userEntity *entities.User) (string, error)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	FullName           string    `json:"full_name"`
	Role               string    `json:"role"`
	VerificationStatus string    `json:"verification_status"`
	TrustScore         int       `json:"trust_score"`
	AverageRating      string    `json:"average_rating"`
	TotalDeliveries    int       `json:"total_deliveries"`
	PhoneVerified      bool      `json:"phone_verified"`
	CreatedAt          time.Time `json:"created_at"`
}
