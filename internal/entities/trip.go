package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Trip struct {
	ID              string
	TravelerID      string
	DepartureCity   string
	DestinationCity string
	DepartureDate   time.Time
	ArrivalDate     time.Time
	FlightNumber    string
	Airline         string
	MaxDocuments    int
	AvailableSlots  int
	Status          TripStatusType
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type TripStatusType string

const (
	TripActive     TripStatusType = "active"
	TripInProgress TripStatusType = "in_progress"
	TripCompleted  TripStatusType = "completed"
	TripCancelled  TripStatusType = "cancelled"
)

const DefaultTripStatus = TripActive

func (t TripStatusType) String() string {
	return string(t)
}

const DefaultMaxDocuments = 3

type TripModify struct {
	ID              *string
	TravelerID      *string
	DepartureCity   *string
	DestinationCity *string
	DepartureDate   *time.Time
	ArrivalDate     *time.Time
	FlightNumber    *string
	Airline         *string
	MaxDocuments    *int
	Status          *TripStatusType
}

// TravelerCandidate - строка выдачи подбора перевозчиков для заявки:
// активная поездка с местами плюс репутация владельца.
type TravelerCandidate struct {
	Trip            Trip
	TravelerName    string
	TrustScore      int
	AverageRating   decimal.Decimal
	TotalDeliveries int
}
