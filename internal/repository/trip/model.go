package trip

import "time"

type TripDB struct {
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
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type TripModifyDB struct {
	ID              *string
	TravelerID      *string
	DepartureCity   *string
	DestinationCity *string
	DepartureDate   *time.Time
	ArrivalDate     *time.Time
	FlightNumber    *string
	Airline         *string
	MaxDocuments    *int
	Status          *string
}

type TravelerCandidateDB struct {
	Trip            TripDB
	TravelerName    string
	TrustScore      int
	AverageRating   string
	TotalDeliveries int
}
