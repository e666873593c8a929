package trip

import (
	"github.com/shopspring/decimal"
	"safiridocs/internal/entities"
)

func ToDomain(t *TripDB) *entities.Trip {
	if t == nil {
		return nil
	}

	return &entities.Trip{
		ID:              t.ID,
		TravelerID:      t.TravelerID,
		DepartureCity:   t.DepartureCity,
		DestinationCity: t.DestinationCity,
		DepartureDate:   t.DepartureDate,
		ArrivalDate:     t.ArrivalDate,
		FlightNumber:    t.FlightNumber,
		Airline:         t.Airline,
		MaxDocuments:    t.MaxDocuments,
		AvailableSlots:  t.AvailableSlots,
		Status:          entities.TripStatusType(t.Status),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func FromDomainModify(tripModify *entities.TripModify) *TripModifyDB {
	if tripModify == nil {
		return nil
	}
	tripDB := &TripModifyDB{}

	if tripModify.ID != nil {
		tripDB.ID = tripModify.ID
	}
	if tripModify.TravelerID != nil {
		tripDB.TravelerID = tripModify.TravelerID
	}
	if tripModify.DepartureCity != nil {
		tripDB.DepartureCity = tripModify.DepartureCity
	}
	if tripModify.DestinationCity != nil {
		tripDB.DestinationCity = tripModify.DestinationCity
	}
	if tripModify.DepartureDate != nil {
		tripDB.DepartureDate = tripModify.DepartureDate
	}
	if tripModify.ArrivalDate != nil {
		tripDB.ArrivalDate = tripModify.ArrivalDate
	}
	if tripModify.FlightNumber != nil {
		tripDB.FlightNumber = tripModify.FlightNumber
	}
	if tripModify.Airline != nil {
		tripDB.Airline = tripModify.Airline
	}
	if tripModify.MaxDocuments != nil {
		tripDB.MaxDocuments = tripModify.MaxDocuments
	}
	if tripModify.Status != nil {
		status := tripModify.Status.String()
		tripDB.Status = &status
	}

	return tripDB
}

func ToDomainList(tripsDB []TripDB) []entities.Trip {
	if len(tripsDB) == 0 {
		return []entities.Trip{}
	}

	result := make([]entities.Trip, len(tripsDB))
	for i, tripDB := range tripsDB {
		result[i] = *ToDomain(&tripDB)
	}
	return result
}

func ToCandidateDomain(c *TravelerCandidateDB) *entities.TravelerCandidate {
	if c == nil {
		return nil
	}

	rating, err := decimal.NewFromString(c.AverageRating)
	if err != nil {
		rating = decimal.Zero
	}

	return &entities.TravelerCandidate{
		Trip:            *ToDomain(&c.Trip),
		TravelerName:    c.TravelerName,
		TrustScore:      c.TrustScore,
		AverageRating:   rating,
		TotalDeliveries: c.TotalDeliveries,
	}
}
