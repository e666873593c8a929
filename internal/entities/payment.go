package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID                string
	DeliveryRequestID string
	SenderID          string
	TravelerID        string
	TotalAmount       decimal.Decimal
	PlatformFee       decimal.Decimal
	TravelerPayout    decimal.Decimal
	PaymentMethod     PaymentMethodType
	EscrowStatus      EscrowStatusType
	PayoutStatus      PayoutStatusType
	ProviderTxRef     string
	ProviderPaymentID string
	ProviderPayoutID  string
	PaidAt            *time.Time
	ReleasedAt        *time.Time
	CreatedAt         time.Time
}

// PlatformFeeRate - комиссия платформы, фиксируется при создании платежа
// и больше не пересчитывается.
var PlatformFeeRate = decimal.NewFromFloat(0.15)

type PaymentMethodType string

const (
	MethodMpesa        PaymentMethodType = "mpesa"
	MethodCard         PaymentMethodType = "card"
	MethodBankTransfer PaymentMethodType = "bank_transfer"
)

func (t PaymentMethodType) String() string {
	return string(t)
}

type EscrowStatusType string

const (
	EscrowPending  EscrowStatusType = "pending"
	EscrowHeld     EscrowStatusType = "held"
	EscrowReleased EscrowStatusType = "released"
	EscrowRefunded EscrowStatusType = "refunded"
	EscrowDisputed EscrowStatusType = "disputed"
)

const DefaultEscrowStatus = EscrowPending

func (t EscrowStatusType) String() string {
	return string(t)
}

type PayoutStatusType string

const (
	PayoutPending    PayoutStatusType = "pending"
	PayoutProcessing PayoutStatusType = "processing"
	PayoutCompleted  PayoutStatusType = "completed"
)

const DefaultPayoutStatus = PayoutPending

func (t PayoutStatusType) String() string {
	return string(t)
}

type PaymentModify struct {
	ID                *string
	DeliveryRequestID *string
	SenderID          *string
	TravelerID        *string
	TotalAmount       *decimal.Decimal
	PlatformFee       *decimal.Decimal
	TravelerPayout    *decimal.Decimal
	PaymentMethod     *PaymentMethodType
	EscrowStatus      *EscrowStatusType
	PayoutStatus      *PayoutStatusType
	ProviderTxRef     *string
	ProviderPaymentID *string
	ProviderPayoutID  *string
}
