package matching

import (
	"errors"

	"safiridocs/internal/service/request"
	"safiridocs/internal/service/trip"
)

// Not-found сентинелы переиспользуются из сервисов-владельцев сущностей:
// репозитории возвращают именно их, и errors.Is в хендлерах ловит ошибку
// независимо от слоя-источника.
var (
	ErrRequestNotFound     = request.ErrRequestNotFound
	ErrTripNotFound        = trip.ErrTripNotFound
	ErrAlreadyMatched      = errors.New("request is not open")
	ErrNoAvailableSlots    = errors.New("trip has no available slots")
	ErrTripNotActive       = errors.New("trip is not active")
	ErrNotVerified         = errors.New("identity verification required")
	ErrCounterpartRejected = errors.New("counterpart is not an approved traveler")
)
