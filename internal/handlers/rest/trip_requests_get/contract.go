//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_requests_get_test
package trip_requests_get

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
	RequestsForTrip(ctx context.Context, tripID string) ([]entities.RequestCandidate, error)
}

type RequestCandidateResponse struct {
	RequestID           string    `json:"request_id"`
	DepartureCity       string    `json:"departure_city"`
	DestinationCity     string    `json:"destination_city"`
	DocumentDescription string    `json:"document_description"`
	DocumentType        string    `json:"document_type"`
	OfferedAmount       string    `json:"offered_amount"`
	Urgency             string    `json:"urgency"`
	SenderName          string    `json:"sender_name"`
	SenderTrustScore    int       `json:"sender_trust_score"`
	CreatedAt           time.Time `json:"created_at"`
}
