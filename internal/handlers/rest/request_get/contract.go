//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_get_test
package request_get

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
	GetRequest(ctx context.Context, id string) (*entities.DeliveryRequest, error)
}

type RequestResponse struct {
	ID                  string     `json:"id"`
	SenderID            string     `json:"sender_id"`
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
	CreatedAt           time.Time  `json:"created_at"`
}
