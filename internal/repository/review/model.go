package review

import "time"

type ReviewDB struct {
	ID                string
	DeliveryRequestID string
	ReviewerID        string
	RevieweeID        string
	Rating            int
	ReviewText        string
	ReviewType        string
	CreatedAt         time.Time
}

type ReviewModifyDB struct {
	ID                *string
	DeliveryRequestID *string
	ReviewerID        *string
	RevieweeID        *string
	Rating            *int
	ReviewText        *string
	ReviewType        *string
}

type ReviewWithAuthorDB struct {
	Review       ReviewDB
	ReviewerName string
}
