package payment

import (
	"errors"

	"safiridocs/internal/service/request"
)

var (
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrRequestNotFound        = request.ErrRequestNotFound
	ErrPaymentAlreadyExists   = errors.New("payment already initiated for this request")
	ErrRequestNotMatched      = errors.New("delivery request is not matched")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrInvalidWebhookPayload  = errors.New("invalid webhook payload")
	ErrWebhookVerification    = errors.New("webhook signature verification failed")
	ErrEscrowNotReleased      = errors.New("escrow is not released")
	ErrPayoutAlreadyCompleted = errors.New("payout already completed")
	ErrPayoutNotProcessing    = errors.New("payout is not in processing state")
	ErrInvalidEscrowState     = errors.New("invalid escrow state for operation")
	ErrGatewayUnavailable     = errors.New("payment gateway unavailable")
)
