package payment

import (
	"github.com/shopspring/decimal"
	"safiridocs/internal/entities"
)

func ToDomain(p *PaymentDB) *entities.Payment {
	if p == nil {
		return nil
	}

	paymentEntity := &entities.Payment{
		ID:                p.ID,
		DeliveryRequestID: p.DeliveryRequestID,
		SenderID:          p.SenderID,
		TravelerID:        p.TravelerID,
		TotalAmount:       mustDecimal(p.TotalAmount),
		PlatformFee:       mustDecimal(p.PlatformFee),
		TravelerPayout:    mustDecimal(p.TravelerPayout),
		PaymentMethod:     entities.PaymentMethodType(p.PaymentMethod),
		EscrowStatus:      entities.EscrowStatusType(p.EscrowStatus),
		PayoutStatus:      entities.PayoutStatusType(p.PayoutStatus),
		ProviderTxRef:     p.ProviderTxRef,
		PaidAt:            p.PaidAt,
		ReleasedAt:        p.ReleasedAt,
		CreatedAt:         p.CreatedAt,
	}
	if p.ProviderPaymentID != nil {
		paymentEntity.ProviderPaymentID = *p.ProviderPaymentID
	}
	if p.ProviderPayoutID != nil {
		paymentEntity.ProviderPayoutID = *p.ProviderPayoutID
	}

	return paymentEntity
}

func mustDecimal(value string) decimal.Decimal {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return parsed
}
