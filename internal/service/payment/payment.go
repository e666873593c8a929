package payment

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"safiridocs/internal/entities"
	"safiridocs/pkg/logger"
)

const (
	escrowCurrency = "KES"
	txRefPrefix    = "SAFIRI"

	payoutRefSuffix = "-payout"

	eventChargeCompleted   = "charge.completed"
	eventTransferCompleted = "transfer.completed"
)

// Payment держит деньги отправителя в escrow до подтверждения доставки.
// Смена статуса escrow всегда условная: повторный вебхук или гонка двух
// релизов не двигают деньги дважды.
type Payment struct {
	log        serviceLogger
	repository Repository
	requests   RequestProvider
	users      UserProvider
	gateway    Gateway
	verifier   WebhookVerifier
}

func New(
	log serviceLogger,
	repository Repository,
	requests RequestProvider,
	users UserProvider,
	gateway Gateway,
	verifier WebhookVerifier,
) *Payment {
	return &Payment{
		log:        log,
		repository: repository,
		requests:   requests,
		users:      users,
		gateway:    gateway,
		verifier:   verifier,
	}
}

// Initiate создает escrow-платеж по сматченной заявке и возвращает ссылку
// на оплату у провайдера. Деньги считаются удержанными только после
// подтвержденного вебхука.
func (s *Payment) Initiate(ctx context.Context, actor *entities.User, requestID string, method entities.PaymentMethodType) (*entities.Payment, string, error) {
	if !isValidMethod(method) {
		return nil, "", ErrInvalidPaymentMethod
	}

	requestEntity, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, "", fmt.Errorf("get request: %w", err)
	}
	if requestEntity.SenderID != actor.ID {
		return nil, "", ErrRequestNotFound
	}
	if requestEntity.Status == entities.RequestOpen || requestEntity.MatchedTravelerID == nil {
		return nil, "", ErrRequestNotMatched
	}

	existing, err := s.repository.GetByRequestID(ctx, requestID)
	if err != nil && !errors.Is(err, ErrPaymentNotFound) {
		return nil, "", fmt.Errorf("get payment: %w", err)
	}
	if existing != nil {
		return nil, "", ErrPaymentAlreadyExists
	}

	total := requestEntity.OfferedAmount
	fee := total.Mul(entities.PlatformFeeRate).Round(2)

	paymentEntity := entities.Payment{
		DeliveryRequestID: requestID,
		SenderID:          actor.ID,
		TravelerID:        *requestEntity.MatchedTravelerID,
		TotalAmount:       total,
		PlatformFee:       fee,
		TravelerPayout:    total.Sub(fee),
		PaymentMethod:     method,
		EscrowStatus:      entities.DefaultEscrowStatus,
		PayoutStatus:      entities.DefaultPayoutStatus,
		ProviderTxRef:     newTxRef(),
	}

	chargeResult, err := s.gateway.CreateCharge(ctx, entities.GatewayCharge{
		TxRef:         paymentEntity.ProviderTxRef,
		Amount:        total,
		Currency:      escrowCurrency,
		PaymentMethod: method,
		CustomerEmail: actor.Email,
		CustomerPhone: actor.Phone,
		CustomerName:  actor.FullName,
		Description:   "SafiriDocs document delivery escrow",
	})
	if err != nil {
		return nil, "", fmt.Errorf("create charge: %w: %w", ErrGatewayUnavailable, err)
	}
	paymentEntity.ProviderPaymentID = chargeResult.ProviderPaymentID

	created, err := s.repository.Create(ctx, paymentEntity)
	if err != nil {
		return nil, "", fmt.Errorf("create payment: %w", err)
	}

	return created, chargeResult.PaymentLink, nil
}

type webhookPayload struct {
	Event string `json:"event"`
	Data  struct {
		ID        int64  `json:"id"`
		TxRef     string `json:"tx_ref"`
		Reference string `json:"reference"`
		Status    string `json:"status"`
	} `json:"data"`
}

// ConfirmWebhook обрабатывает уведомление провайдера. Подпись сверяется до
// разбора тела; charge.completed дополнительно перепроверяется у провайдера,
// телу вебхука мы не верим. Незнакомые события и ссылки игнорируются с 200:
// провайдер шлет вебхуки и по чужим для нас транзакциям.
func (s *Payment) ConfirmWebhook(ctx context.Context, signature string, body []byte) error {
	if !s.verifier.Verify(signature) {
		return ErrWebhookVerification
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWebhookPayload, err)
	}

	switch {
	case payload.Event == eventChargeCompleted && payload.Data.Status == entities.GatewayStatusSuccessful:
		if payload.Data.TxRef == "" {
			return ErrInvalidWebhookPayload
		}

		return s.confirmCharge(ctx, payload.Data.TxRef)
	case payload.Event == eventTransferCompleted && strings.EqualFold(payload.Data.Status, entities.GatewayStatusSuccessful):
		return s.completePayout(ctx, payload.Data.Reference)
	default:
		s.log.Info("webhook ignored",
			logger.NewField("event", payload.Event),
			logger.NewField("status", payload.Data.Status),
		)

		return nil
	}
}

func (s *Payment) confirmCharge(ctx context.Context, txRef string) error {
	verified, err := s.gateway.VerifyTransaction(ctx, txRef)
	if err != nil {
		return fmt.Errorf("verify transaction: %w", err)
	}
	if verified.Status != entities.GatewayStatusSuccessful {
		s.log.Warn("webhook claims success, provider disagrees",
			logger.NewField("tx_ref", txRef),
			logger.NewField("provider_status", verified.Status),
		)
		return ErrWebhookVerification
	}

	paymentEntity, err := s.repository.GetByTxRef(ctx, verified.TxRef)
	if errors.Is(err, ErrPaymentNotFound) {
		s.log.Warn("webhook for unknown tx_ref ignored",
			logger.NewField("tx_ref", verified.TxRef),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get payment: %w", err)
	}
	if !verified.Amount.Equal(paymentEntity.TotalAmount) {
		s.log.Warn("webhook amount mismatch",
			logger.NewField("tx_ref", txRef),
			logger.NewField("expected", paymentEntity.TotalAmount.String()),
			logger.NewField("actual", verified.Amount.String()),
		)
		return ErrWebhookVerification
	}

	err = s.repository.MarkHeld(ctx, paymentEntity.DeliveryRequestID)
	if errors.Is(err, ErrInvalidEscrowState) {
		// Повтор вебхука: деньги уже удержаны либо двинулись дальше.
		return nil
	}
	if err != nil {
		return fmt.Errorf("mark held: %w", err)
	}

	s.log.Info("escrow held",
		logger.NewField("request_id", paymentEntity.DeliveryRequestID),
		logger.NewField("tx_ref", paymentEntity.ProviderTxRef),
	)

	return nil
}

// completePayout закрывает выплату по вебхуку об успешном переводе.
// Ссылка перевода строится из tx_ref платежа, по ней платеж и находится.
func (s *Payment) completePayout(ctx context.Context, reference string) error {
	txRef := strings.TrimSuffix(reference, payoutRefSuffix)
	if txRef == "" || txRef == reference {
		s.log.Info("transfer webhook with foreign reference ignored",
			logger.NewField("reference", reference),
		)

		return nil
	}

	paymentEntity, err := s.repository.GetByTxRef(ctx, txRef)
	if errors.Is(err, ErrPaymentNotFound) {
		s.log.Warn("transfer webhook for unknown payment ignored",
			logger.NewField("reference", reference),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get payment: %w", err)
	}

	err = s.repository.MarkPayoutCompleted(ctx, paymentEntity.ID)
	if errors.Is(err, ErrPayoutNotProcessing) {
		// Повтор вебхука либо перевод, который мы не отправляли.
		return nil
	}
	if err != nil {
		return fmt.Errorf("mark payout completed: %w", err)
	}

	s.log.Info("payout completed",
		logger.NewField("payment_id", paymentEntity.ID),
		logger.NewField("reference", reference),
	)

	return nil
}

// Status возвращает платеж только его участникам.
func (s *Payment) Status(ctx context.Context, actor *entities.User, paymentID string) (*entities.Payment, error) {
	paymentEntity, err := s.repository.GetByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if paymentEntity.SenderID != actor.ID && paymentEntity.TravelerID != actor.ID {
		return nil, ErrPaymentNotFound
	}

	return paymentEntity, nil
}

// Payout отправляет перевозчику его долю после релиза escrow.
func (s *Payment) Payout(ctx context.Context, actor *entities.User, paymentID string) error {
	paymentEntity, err := s.repository.GetByID(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("get payment: %w", err)
	}
	if paymentEntity.TravelerID != actor.ID {
		return ErrPaymentNotFound
	}
	if paymentEntity.EscrowStatus != entities.EscrowReleased {
		return ErrEscrowNotReleased
	}
	if paymentEntity.PayoutStatus == entities.PayoutCompleted {
		return ErrPayoutAlreadyCompleted
	}

	traveler, err := s.users.GetUser(ctx, paymentEntity.TravelerID)
	if err != nil {
		return fmt.Errorf("get traveler: %w", err)
	}

	transferResult, err := s.gateway.CreateTransfer(ctx, entities.GatewayTransfer{
		Reference:       paymentEntity.ProviderTxRef + payoutRefSuffix,
		Amount:          paymentEntity.TravelerPayout,
		Currency:        escrowCurrency,
		Narration:       "SafiriDocs delivery payout",
		PhoneNumber:     traveler.Phone,
		BeneficiaryName: traveler.FullName,
	})
	if err != nil {
		return fmt.Errorf("create transfer: %w: %w", ErrGatewayUnavailable, err)
	}

	if err := s.repository.MarkPayoutProcessing(ctx, paymentEntity.ID, transferResult.ProviderPayoutID); err != nil {
		return fmt.Errorf("mark payout processing: %w", err)
	}

	return nil
}

// ReleaseEscrow вызывается при подтверждении доставки, в ее транзакции.
func (s *Payment) ReleaseEscrow(ctx context.Context, requestID string) error {
	err := s.repository.MarkReleased(ctx, requestID)
	if errors.Is(err, ErrPaymentNotFound) {
		// Доставка могла обойтись без онлайн-оплаты.
		return nil
	}
	if err != nil {
		return fmt.Errorf("mark released: %w", err)
	}

	return nil
}

// RefundEscrow вызывается при отмене заявки, в ее транзакции.
func (s *Payment) RefundEscrow(ctx context.Context, requestID string) error {
	err := s.repository.MarkRefunded(ctx, requestID)
	if errors.Is(err, ErrPaymentNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("mark refunded: %w", err)
	}

	return nil
}

// newTxRef генерирует уникальную ссылку транзакции для провайдера.
func newTxRef() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)

	return fmt.Sprintf("%s-%d-%s", txRefPrefix, time.Now().UnixMilli(), hex.EncodeToString(buf))
}

func isValidMethod(method entities.PaymentMethodType) bool {
	switch method {
	case entities.MethodMpesa, entities.MethodCard, entities.MethodBankTransfer:
		return true
	default:
		return false
	}
}
