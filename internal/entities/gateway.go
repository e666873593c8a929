package entities

import "github.com/shopspring/decimal"

// GatewayCharge - запрос на списание средств у отправителя.
type GatewayCharge struct {
	TxRef         string
	Amount        decimal.Decimal
	Currency      string
	PaymentMethod PaymentMethodType
	CustomerEmail string
	CustomerPhone string
	CustomerName  string
	Description   string
}

// GatewayChargeResult - ответ провайдера на инициацию платежа.
type GatewayChargeResult struct {
	ProviderPaymentID string
	PaymentLink       string
	Status            string
}

// GatewayTransaction - результат сверки транзакции у провайдера.
type GatewayTransaction struct {
	ProviderPaymentID string
	TxRef             string
	Amount            decimal.Decimal
	Currency          string
	Status            string
}

// GatewayTransfer - запрос на выплату перевозчику.
type GatewayTransfer struct {
	Reference       string
	Amount          decimal.Decimal
	Currency        string
	Narration       string
	PhoneNumber     string
	BeneficiaryName string
}

// GatewayTransferResult - ответ провайдера на перевод.
type GatewayTransferResult struct {
	ProviderPayoutID string
	Status           string
}

const (
	GatewayStatusSuccessful = "successful"
	GatewayStatusPending    = "pending"
)
