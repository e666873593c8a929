package request

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidAmount         = errors.New("offered amount out of range")
	ErrInvalidUrgency        = errors.New("invalid urgency")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrNotSender    = errors.New("only senders can create delivery requests")
	ErrNotVerified  = errors.New("identity verification required")
	ErrNotTraveler  = errors.New("caller is not the matched traveler")
	ErrNotCancelled = errors.New("request cannot be cancelled in its current status")

	ErrRequestNotFound         = errors.New("request not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidTrackingCode     = errors.New("invalid tracking code")
)
