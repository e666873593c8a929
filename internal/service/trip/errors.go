package trip

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDates          = errors.New("arrival date must not precede departure date")
	ErrInvalidMaxDocuments   = errors.New("invalid max documents")

	ErrNotTraveler  = errors.New("only travelers can create trips")
	ErrNotVerified  = errors.New("identity verification required")
	ErrTripNotFound = errors.New("trip not found")
	ErrSlotsFull    = errors.New("available slots already at maximum")
)
