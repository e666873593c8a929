package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryRequest struct {
	ID                  string
	SenderID            string
	DepartureCity       string
	DestinationCity     string
	PickupAddress       string
	DeliveryAddress     string
	DocumentDescription string
	DocumentType        string
	OfferedAmount       decimal.Decimal
	Urgency             UrgencyType
	Status              RequestStatusType
	TrackingCode        string
	MatchedTripID       *string
	MatchedTravelerID   *string
	MatchedAt           *time.Time
	PickedUpAt          *time.Time
	DeliveredAt         *time.Time
	CancellationReason  string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type RequestStatusType string

const (
	RequestOpen      RequestStatusType = "open"
	RequestMatched   RequestStatusType = "matched"
	RequestPickedUp  RequestStatusType = "picked_up"
	RequestInTransit RequestStatusType = "in_transit"
	RequestDelivered RequestStatusType = "delivered"
	RequestDisputed  RequestStatusType = "disputed"
	RequestCancelled RequestStatusType = "cancelled"
)

const DefaultRequestStatus = RequestOpen

func (t RequestStatusType) String() string {
	return string(t)
}

// IsCancellable - отменять можно только до физической передачи документов.
func (t RequestStatusType) IsCancellable() bool {
	return t == RequestOpen || t == RequestMatched
}

type UrgencyType string

const (
	UrgencyThreeDays UrgencyType = "within_3_days"
	UrgencySevenDays UrgencyType = "within_7_days"
	UrgencyFlexible  UrgencyType = "flexible"
)

const DefaultUrgency = UrgencySevenDays

func (t UrgencyType) String() string {
	return string(t)
}

type RequestModify struct {
	ID                  *string
	SenderID            *string
	DepartureCity       *string
	DestinationCity     *string
	PickupAddress       *string
	DeliveryAddress     *string
	DocumentDescription *string
	DocumentType        *string
	OfferedAmount       *decimal.Decimal
	Urgency             *UrgencyType
	Status              *RequestStatusType
}

// Match фиксирует связывание заявки с поездкой: обновление заявки и
// декремент слотов поездки выполняются одной транзакцией.
type Match struct {
	RequestID    string
	TripID       string
	TravelerID   string
	TrackingCode string
	MatchedAt    time.Time
}

// RequestCandidate - строка выдачи открытых заявок для поездки.
type RequestCandidate struct {
	Request    DeliveryRequest
	SenderName string
	TrustScore int
}

// RequestFilter сужает витрину заявок. Пустые поля не фильтруют.
type RequestFilter struct {
	Status          RequestStatusType
	DepartureCity   string
	DestinationCity string
	Urgency         UrgencyType
}
