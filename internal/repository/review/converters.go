package review

import (
	"safiridocs/internal/entities"
)

func ToDomain(r *ReviewDB) *entities.Review {
	if r == nil {
		return nil
	}

	return &entities.Review{
		ID:                r.ID,
		DeliveryRequestID: r.DeliveryRequestID,
		ReviewerID:        r.ReviewerID,
		RevieweeID:        r.RevieweeID,
		Rating:            r.Rating,
		ReviewText:        r.ReviewText,
		ReviewType:        entities.ReviewType(r.ReviewType),
		CreatedAt:         r.CreatedAt,
	}
}

func FromDomainModify(reviewModify *entities.ReviewModify) *ReviewModifyDB {
	if reviewModify == nil {
		return nil
	}
	reviewDB := &ReviewModifyDB{}

	if reviewModify.ID != nil {
		reviewDB.ID = reviewModify.ID
	}
	if reviewModify.DeliveryRequestID != nil {
		reviewDB.DeliveryRequestID = reviewModify.DeliveryRequestID
	}
	if reviewModify.ReviewerID != nil {
		reviewDB.ReviewerID = reviewModify.ReviewerID
	}
	if reviewModify.RevieweeID != nil {
		reviewDB.RevieweeID = reviewModify.RevieweeID
	}
	if reviewModify.Rating != nil {
		reviewDB.Rating = reviewModify.Rating
	}
	if reviewModify.ReviewText != nil {
		reviewDB.ReviewText = reviewModify.ReviewText
	}
	if reviewModify.ReviewType != nil {
		reviewType := reviewModify.ReviewType.String()
		reviewDB.ReviewType = &reviewType
	}

	return reviewDB
}

func ToDomainWithAuthor(r *ReviewWithAuthorDB) *entities.ReviewWithAuthor {
	if r == nil {
		return nil
	}

	return &entities.ReviewWithAuthor{
		Review:       *ToDomain(&r.Review),
		ReviewerName: r.ReviewerName,
	}
}
