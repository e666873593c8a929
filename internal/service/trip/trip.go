package trip

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"safiridocs/internal/entities"
)

type Trip struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Trip {
	return &Trip{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Trip) CreateTrip(ctx context.Context, actor *entities.User, tripModify entities.TripModify) (string, error) {
	if !actor.CanCarry() {
		return "", ErrNotTraveler
	}
	if !actor.IsApproved() {
		return "", ErrNotVerified
	}

	if tripModify.DepartureCity == nil ||
		tripModify.DestinationCity == nil ||
		tripModify.DepartureDate == nil ||
		tripModify.ArrivalDate == nil {
		return "", ErrMissingRequiredFields
	}

	if !isValidCity(*tripModify.DepartureCity) || !isValidCity(*tripModify.DestinationCity) {
		return "", ErrMissingRequiredFields
	}
	if tripModify.ArrivalDate.Before(*tripModify.DepartureDate) {
		return "", ErrInvalidDates
	}

	if tripModify.MaxDocuments == nil {
		tripModify.MaxDocuments = pointer.To(entities.DefaultMaxDocuments)
	}
	if !isValidMaxDocuments(*tripModify.MaxDocuments) {
		return "", ErrInvalidMaxDocuments
	}

	tripModify.ID = pointer.To(uuid.NewString())
	tripModify.TravelerID = &actor.ID

	id, err := s.repository.Create(ctx, tripModify)
	if err != nil {
		return "", fmt.Errorf("create trip: %w", err)
	}

	return id, nil
}

func (s *Trip) GetTrip(ctx context.Context, id string) (*entities.Trip, error) {
	tripEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return tripEntity, nil
}

func (s *Trip) GetTrips(ctx context.Context, travelerID string) ([]entities.Trip, error) {
	trips, err := s.repository.GetByTraveler(ctx, travelerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trips: %w", err)
	}

	return trips, nil
}

// RestoreTripSlot возвращает один слот поездке после отмены или отказа.
// Вызывается только изнутри транзакции жизненного цикла заявки.
func (s *Trip) RestoreTripSlot(ctx context.Context, tripID string) error {
	if err := s.repository.RestoreSlot(ctx, tripID); err != nil {
		return fmt.Errorf("restore trip slot: %w", err)
	}
	return nil
}

// CompleteExpiredTrips переводит активные поездки с прошедшей датой прилёта
// в completed. Запускается фоновой задачей.
func (s *Trip) CompleteExpiredTrips(ctx context.Context) (int64, error) {
	rowsAffected, err := s.repository.CompleteExpired(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("trip cleanup timed out: %w", err)
		}
		return 0, fmt.Errorf("trip cleanup: %w", err)
	}

	return rowsAffected, nil
}
