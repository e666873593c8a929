package matching

import (
	"context"
	"fmt"
	"time"

	"safiridocs/internal/entities"
)

// Matching связывает одну открытую заявку с одной поездкой, расходуя один
// слот. Декремент слотов и запись матча - единая транзакция: упасть между
// ними нельзя.
type Matching struct {
	requestRepository RequestRepository
	tripRepository    TripRepository
	userService       UserService
	codes             CodeFactory
	txManager         TxManager
}

func New(
	requestRepository RequestRepository,
	tripRepository TripRepository,
	userService UserService,
	codes CodeFactory,
	txManager TxManager,
) *Matching {
	return &Matching{
		requestRepository: requestRepository,
		tripRepository:    tripRepository,
		userService:       userService,
		codes:             codes,
		txManager:         txManager,
	}
}

// Match - инициатива отправителя: выбирает перевозчика из ранжированного
// списка кандидатов.
func (s *Matching) Match(ctx context.Context, actor *entities.User, requestID, tripID, travelerID string) (*entities.Match, error) {
	if !actor.IsApproved() {
		return nil, ErrNotVerified
	}

	requestEntity, err := s.requestRepository.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if requestEntity.SenderID != actor.ID {
		return nil, ErrRequestNotFound
	}

	traveler, err := s.userService.GetUser(ctx, travelerID)
	if err != nil {
		return nil, fmt.Errorf("get traveler: %w", err)
	}
	if !traveler.IsApproved() || !traveler.CanCarry() {
		return nil, ErrCounterpartRejected
	}

	return s.bind(ctx, requestEntity, tripID, travelerID)
}

// Apply - инициатива перевозчика: неявный accept без встречного предложения.
func (s *Matching) Apply(ctx context.Context, actor *entities.User, tripID, requestID string) (*entities.Match, error) {
	if !actor.IsApproved() || !actor.CanCarry() {
		return nil, ErrNotVerified
	}

	tripEntity, err := s.tripRepository.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}
	if tripEntity.TravelerID != actor.ID {
		return nil, ErrTripNotFound
	}

	requestEntity, err := s.requestRepository.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	sender, err := s.userService.GetUser(ctx, requestEntity.SenderID)
	if err != nil {
		return nil, fmt.Errorf("get sender: %w", err)
	}
	if !sender.IsApproved() {
		return nil, ErrCounterpartRejected
	}

	return s.bind(ctx, requestEntity, tripID, actor.ID)
}

func (s *Matching) bind(ctx context.Context, requestEntity *entities.DeliveryRequest, tripID, travelerID string) (*entities.Match, error) {
	if requestEntity.Status != entities.RequestOpen {
		return nil, ErrAlreadyMatched
	}

	trackingCode, err := s.codes.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate tracking code: %w", err)
	}

	match := entities.Match{
		RequestID:    requestEntity.ID,
		TripID:       tripID,
		TravelerID:   travelerID,
		TrackingCode: trackingCode,
		MatchedAt:    time.Now().UTC(),
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		tripEntity, err := s.tripRepository.GetByID(ctx, tripID)
		if err != nil {
			return fmt.Errorf("get trip: %w", err)
		}
		if tripEntity.TravelerID != travelerID {
			return ErrTripNotFound
		}
		if tripEntity.Status != entities.TripActive {
			return ErrTripNotActive
		}
		if tripEntity.AvailableSlots <= 0 {
			return ErrNoAvailableSlots
		}

		// Оба апдейта условные: гонка за последний слот или за открытую
		// заявку здесь честно проигрывается, а не перезаписывается.
		if err := s.tripRepository.ReserveSlot(ctx, tripID); err != nil {
			return fmt.Errorf("reserve slot: %w", err)
		}
		if err := s.requestRepository.BindMatch(ctx, match); err != nil {
			return fmt.Errorf("bind match: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &match, nil
}

// TravelersForRequest возвращает кандидатов: точное совпадение пары городов,
// активная поездка со свободными слотами, подтвержденный перевозчик;
// сортировка по trust score, затем по рейтингу.
func (s *Matching) TravelersForRequest(ctx context.Context, requestID string) ([]entities.TravelerCandidate, error) {
	requestEntity, err := s.requestRepository.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	candidates, err := s.tripRepository.GetCandidatesForRequest(ctx, requestEntity.DepartureCity, requestEntity.DestinationCity)
	if err != nil {
		return nil, fmt.Errorf("find travelers: %w", err)
	}

	return candidates, nil
}

// RequestsForTrip возвращает открытые заявки по паре городов поездки,
// дорогие сверху.
func (s *Matching) RequestsForTrip(ctx context.Context, tripID string) ([]entities.RequestCandidate, error) {
	tripEntity, err := s.tripRepository.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}

	candidates, err := s.requestRepository.GetCandidatesForTrip(ctx, tripEntity.DepartureCity, tripEntity.DestinationCity)
	if err != nil {
		return nil, fmt.Errorf("find requests: %w", err)
	}

	return candidates, nil
}
