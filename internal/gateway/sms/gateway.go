package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	retrierconfig "safiridocs/pkg/retrier"
	"safiridocs/pkg/retrier/backoff_adapter"
)

const serviceName = "sms"

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var errTransient = errors.New("transient provider error")

// Gateway отправляет одноразовые коды через HTTP API SMS-провайдера.
type Gateway struct {
	client  httpDoer
	retrier retrier
	baseURL string
	apiKey  string
	sender  string
}

func New(client httpDoer, baseURL, apiKey, sender string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		baseURL: baseURL,
		apiKey:  apiKey,
		sender:  sender,
	}
}

type sendRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
}

func (g *Gateway) SendOTP(ctx context.Context, phone, code string) error {
	payload, err := json.Marshal(sendRequest{
		To:      phone,
		From:    g.sender,
		Message: fmt.Sprintf("Your SafiriDocs verification code is %s", code),
	})
	if err != nil {
		return fmt.Errorf("gateway sms, marshal request: %w", err)
	}

	err = g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return g.send(ctx, payload)
	})
	if err != nil {
		return fmt.Errorf("gateway sms, send otp: %w", err)
	}

	return nil
}

func (g *Gateway) send(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", errTransient, err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d", errTransient, resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("provider responded with http %d", resp.StatusCode)
	}

	return nil
}

func isRetryable(err error) bool {
	return errors.Is(err, errTransient)
}
