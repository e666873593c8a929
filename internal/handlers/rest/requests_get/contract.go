//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=requests_get_test
package requests_get

import (
	"context"
	"time"

	"safiridocs/internal/entities"
	"safiridocs/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetSenderRequests(ctx context.Context, senderID string) ([]entities.DeliveryRequest, error)
	GetOpenRequests(ctx context.Context, filter entities.RequestFilter) ([]entities.RequestCandidate, error)
}

type RequestResponse struct {
	ID                  string     `json:"id"`
	DepartureCity       string     `json:"departure_city"`
	DestinationCity     string     `json:"destination_city"`
	PickupAddress       string     `json:"pickup_address"`
	DeliveryAddress     string     `json:"delivery_address"`
	DocumentDescription string     `json:"document_description"`
	DocumentType        string     `json:"document_type"`
	OfferedAmount       string     `json:"offered_amount"`
	Urgency             string     `json:"urgency"`
	Status              string     `json:"status"`
	TrackingCode        string     `json:"tracking_code,omitempty"`
	MatchedTripID       *string    `json:"matched_trip_id,omitempty"`
	MatchedTravelerID   *string    `json:"matched_traveler_id,omitempty"`
	MatchedAt           *time.Time `json:"matched_at,omitempty"`
	PickedUpAt          *time.Time `json:"picked_up_at,omitempty"`
	DeliveredAt         *time.Time `json:"delivered_at,omitempty"`
	CancellationReason  string     `json:"cancellation_reason,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

// MarketRequestResponse - витрина для перевозчика: адресов нет,
// зато есть имя и trust score отправителя.
type MarketRequestResponse struct {
	ID                  string    `json:"id"`
	DepartureCity       string    `json:"departure_city"`
	DestinationCity     string    `json:"destination_city"`
	DocumentDescription string    `json:"document_description"`
	DocumentType        string    `json:"document_type"`
	OfferedAmount       string    `json:"offered_amount"`
	Urgency             string    `json:"urgency"`
	Status              string    `json:"status"`
	SenderName          string    `json:"sender_name"`
	SenderTrustScore    int       `json:"sender_trust_score"`
	CreatedAt           time.Time `json:"created_at"`
}
