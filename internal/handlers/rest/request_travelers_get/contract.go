//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_travelers_get_test
package request_travelers_get

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
	TravelersForRequest(ctx context.Context, requestID string) ([]entities.TravelerCandidate, error)
}

type TravelerCandidateResponse struct {
	TripID          string    `json:"trip_id"`
	TravelerID      string    `json:"traveler_id"`
	TravelerName    string    `json:"traveler_name"`
	TrustScore      int       `json:"trust_score"`
	AverageRating   string    `json:"average_rating"`
	TotalDeliveries int       `json:"total_deliveries"`
	DepartureDate   time.Time `json:"departure_date"`
	ArrivalDate     time.Time `json:"arrival_date"`
	FlightNumber    string    `json:"flight_number,omitempty"`
	Airline         string    `json:"airline,omitempty"`
	AvailableSlots  int       `json:"available_slots"`
}
