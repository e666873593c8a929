//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=verify_otp_post_test
package verify_otp_post

import (
	"context"

	"safiridocs/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	VerifyOTP(ctx context.Context, phone, code string) error
}

type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

type VerifyOTPResponse struct {
	Verified bool `json:"verified"`
}
