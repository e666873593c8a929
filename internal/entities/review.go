package entities

import "time"

type Review struct {
	ID                string
	DeliveryRequestID string
	ReviewerID        string
	RevieweeID        string
	Rating            int
	ReviewText        string
	ReviewType        ReviewType
	CreatedAt         time.Time
}

type ReviewType string

const (
	SenderToTraveler ReviewType = "sender_to_traveler"
	TravelerToSender ReviewType = "traveler_to_sender"
)

func (t ReviewType) String() string {
	return string(t)
}

const (
	MinRating = 1
	MaxRating = 5
)

type ReviewModify struct {
	ID                *string
	DeliveryRequestID *string
	ReviewerID        *string
	RevieweeID        *string
	Rating            *int
	ReviewText        *string
	ReviewType        *ReviewType
}

// ReviewWithAuthor - отзыв вместе с именем автора для выдачи по пользователю.
type ReviewWithAuthor struct {
	Review       Review
	ReviewerName string
}
