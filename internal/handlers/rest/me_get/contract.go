//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=me_get_test
package me_get

import (
	"time"

	"safiridocs/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type MeResponse struct {
	ID                   string    `json:"id"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	FullName             string    `json:"full_name"`
	Role                 string    `json:"role"`
	VerificationStatus   string    `json:"verification_status"`
	AccountStatus        string    `json:"account_status"`
	TrustScore           int       `json:"trust_score"`
	AverageRating        string    `json:"average_rating"`
	TotalDeliveries      int       `json:"total_deliveries"`
	SuccessfulDeliveries int       `json:"successful_deliveries"`
	PhoneVerified        bool      `json:"phone_verified"`
	CreatedAt            time.Time `json:"created_at"`
}
