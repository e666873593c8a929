//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_test
package trip

import (
	"context"

	"safiridocs/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, tripModifyEntity entities.TripModify) (string, error)
	GetByID(ctx context.Context, id string) (*entities.Trip, error)
	GetByTraveler(ctx context.Context, travelerID string) ([]entities.Trip, error)
	RestoreSlot(ctx context.Context, id string) error
	CompleteExpired(ctx context.Context) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
