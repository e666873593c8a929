package flutterwave

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"safiridocs/internal/entities"
	retrierconfig "safiridocs/pkg/retrier"
	"safiridocs/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "flutterwave"

	mpesaBankCode = "MPS"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0

	maxResponseBytes = 1 << 20
)

// errTransient помечает ответы, которые имеет смысл ретраить: 429, 5xx
// и сетевые сбои. Остальные 4xx ретраить бессмысленно.
var errTransient = errors.New("transient provider error")

type Gateway struct {
	client    httpDoer
	retrier   retrier
	baseURL   string
	secretKey string
}

func New(client httpDoer, baseURL, secretKey string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:    client,
		retrier:   backoff_adapter.New(retryConfig),
		baseURL:   baseURL,
		secretKey: secretKey,
	}
}

func (g *Gateway) CreateCharge(ctx context.Context, charge entities.GatewayCharge) (*entities.GatewayChargeResult, error) {
	req := chargeRequest{
		TxRef:          charge.TxRef,
		Amount:         charge.Amount.String(),
		Currency:       charge.Currency,
		PaymentOptions: paymentOption(charge.PaymentMethod),
		Customer: chargeCustomer{
			Email:       charge.CustomerEmail,
			PhoneNumber: charge.CustomerPhone,
			Name:        charge.CustomerName,
		},
		Customizations: customizations{
			Title:       "SafiriDocs",
			Description: charge.Description,
		},
	}

	var resp chargeResponse
	err := g.executeWithMetrics(ctx, "CreateCharge", http.MethodPost, "/v3/payments", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway flutterwave, create charge: %s: %w", charge.TxRef, err)
	}
	if resp.Status != "success" {
		return nil, fmt.Errorf("gateway flutterwave, create charge rejected: %s", resp.Message)
	}

	return &entities.GatewayChargeResult{
		PaymentLink: resp.Data.Link,
		Status:      entities.GatewayStatusPending,
	}, nil
}

func (g *Gateway) VerifyTransaction(ctx context.Context, txRef string) (*entities.GatewayTransaction, error) {
	path := "/v3/transactions/verify_by_reference?tx_ref=" + url.QueryEscape(txRef)

	var resp verifyResponse
	err := g.executeWithMetrics(ctx, "VerifyTransaction", http.MethodGet, path, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway flutterwave, verify transaction: %s: %w", txRef, err)
	}
	if resp.Status != "success" {
		return nil, fmt.Errorf("gateway flutterwave, verify transaction rejected: %s", resp.Message)
	}

	return &entities.GatewayTransaction{
		ProviderPaymentID: strconv.FormatInt(resp.Data.ID, 10),
		TxRef:             resp.Data.TxRef,
		Amount:            decimal.NewFromFloat(resp.Data.Amount),
		Currency:          resp.Data.Currency,
		Status:            resp.Data.Status,
	}, nil
}

func (g *Gateway) CreateTransfer(ctx context.Context, transfer entities.GatewayTransfer) (*entities.GatewayTransferResult, error) {
	req := transferRequest{
		AccountBank:     mpesaBankCode,
		AccountNumber:   transfer.PhoneNumber,
		Amount:          transfer.Amount.String(),
		Currency:        transfer.Currency,
		Reference:       transfer.Reference,
		Narration:       transfer.Narration,
		BeneficiaryName: transfer.BeneficiaryName,
	}

	var resp transferResponse
	err := g.executeWithMetrics(ctx, "CreateTransfer", http.MethodPost, "/v3/transfers", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway flutterwave, create transfer: %s: %w", transfer.Reference, err)
	}
	if resp.Status != "success" {
		return nil, fmt.Errorf("gateway flutterwave, create transfer rejected: %s", resp.Message)
	}

	return &entities.GatewayTransferResult{
		ProviderPayoutID: strconv.FormatInt(resp.Data.ID, 10),
		Status:           resp.Data.Status,
	}, nil
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method, httpMethod, path string, body, out interface{}) error {
	var attempt uint64
	var lastCode int
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		code, err := g.call(ctx, httpMethod, path, body, out)
		lastCode = code
		return err
	})

	httpCode := strconv.Itoa(lastCode)
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func (g *Gateway) call(ctx context.Context, httpMethod, path string, body, out interface{}) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, g.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errTransient, err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: read response: %w", errTransient, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return resp.StatusCode, fmt.Errorf("%w: http %d", errTransient, resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return resp.StatusCode, fmt.Errorf("provider responded with http %d: %s", resp.StatusCode, responseBody)
	}

	if err := json.Unmarshal(responseBody, out); err != nil {
		return resp.StatusCode, fmt.Errorf("unmarshal response: %w", err)
	}

	return resp.StatusCode, nil
}

func paymentOption(method entities.PaymentMethodType) string {
	switch method {
	case entities.MethodMpesa:
		return "mpesa"
	case entities.MethodCard:
		return "card"
	case entities.MethodBankTransfer:
		return "banktransfer"
	default:
		return "card"
	}
}

func isRetryable(err error) bool {
	return errors.Is(err, errTransient)
}
