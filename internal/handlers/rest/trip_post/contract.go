//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_post_test
package trip_post

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
	CreateTrip(ctx context.Context, actor *entities.User, tripModify entities.TripModify) (string, error)
}

type TripCreate struct {
	DepartureCity   string    `json:"departure_city"`
	DestinationCity string    `json:"destination_city"`
	DepartureDate   time.Time `json:"departure_date"`
	ArrivalDate     time.Time `json:"arrival_date"`
	FlightNumber    string    `json:"flight_number,omitempty"`
	Airline         string    `json:"airline,omitempty"`
	MaxDocuments    *int      `json:"max_documents,omitempty"`
}

type TripCreateResponse struct {
	ID string `json:"id"`
}
