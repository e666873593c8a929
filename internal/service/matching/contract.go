//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matching_test
package matching

import (
	"context"

	"safiridocs/internal/entities"
)

type RequestRepository interface {
	GetByID(ctx context.Context, id string) (*entities.DeliveryRequest, error)
	// BindMatch привязывает заявку к поездке условным UPDATE по статусу open.
	BindMatch(ctx context.Context, match entities.Match) error
	GetCandidatesForTrip(ctx context.Context, departureCity, destinationCity string) ([]entities.RequestCandidate, error)
}

type TripRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Trip, error)
	// ReserveSlot декрементирует available_slots условным UPDATE (slots > 0).
	ReserveSlot(ctx context.Context, id string) error
	GetCandidatesForRequest(ctx context.Context, departureCity, destinationCity string) ([]entities.TravelerCandidate, error)
}

type UserService interface {
	GetUser(ctx context.Context, id string) (*entities.User, error)
}

type CodeFactory interface {
	Generate() (string, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
