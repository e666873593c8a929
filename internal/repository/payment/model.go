package payment

import "time"

type PaymentDB struct {
	ID                string
	DeliveryRequestID string
	SenderID          string
	TravelerID        string
	TotalAmount       string
	PlatformFee       string
	TravelerPayout    string
	PaymentMethod     string
	EscrowStatus      string
	PayoutStatus      string
	ProviderTxRef     string
	ProviderPaymentID *string
	ProviderPayoutID  *string
	PaidAt            *time.Time
	ReleasedAt        *time.Time
	CreatedAt         time.Time
}
