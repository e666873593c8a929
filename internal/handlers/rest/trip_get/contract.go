//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_get_test
package trip_get

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
	GetTrip(ctx context.Context, id string) (*entities.Trip, error)
}

type TripResponse struct {
	ID              string    `json:"id"`
	TravelerID      string    `json:"traveler_id"`
	DepartureCity   string    `json:"departure_city"`
	DestinationCity string    `json:"destination_city"`
	DepartureDate   time.Time `json:"departure_date"`
	ArrivalDate     time.Time `json:"arrival_date"`
	FlightNumber    string    `json:"flight_number,omitempty"`
	Airline         string    `json:"airline,omitempty"`
	MaxDocuments    int       `json:"max_documents"`
	AvailableSlots  int       `json:"available_slots"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
