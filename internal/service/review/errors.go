package review

import (
	"errors"

	"safiridocs/internal/service/request"
)

var (
	ErrRequestNotFound = request.ErrRequestNotFound
	ErrRequestNotDone  = errors.New("delivery request is not delivered yet")
	ErrAlreadyReviewed = errors.New("review already submitted for this delivery")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrUserNotFound    = errors.New("user not found")
	ErrNotParticipant  = errors.New("actor is not a participant of the delivery")
)
