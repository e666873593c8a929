package request

import "time"

type RequestDB struct {
	ID                  string
	SenderID            string
	DepartureCity       string
	DestinationCity     string
	PickupAddress       string
	DeliveryAddress     string
	DocumentDescription string
	DocumentType        string
	OfferedAmount       string
	Urgency             string
	Status              string
	TrackingCode        *string
	MatchedTripID       *string
	MatchedTravelerID   *string
	MatchedAt           *time.Time
	PickedUpAt          *time.Time
	DeliveredAt         *time.Time
	CancellationReason  string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type RequestModifyDB struct {
	ID                  *string
	SenderID            *string
	DepartureCity       *string
	DestinationCity     *string
	PickupAddress       *string
	DeliveryAddress     *string
	DocumentDescription *string
	DocumentType        *string
	OfferedAmount       *string
	Urgency             *string
	Status              *string
}

type RequestCandidateDB struct {
	Request    RequestDB
	SenderName string
	TrustScore int
}
