package request

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"safiridocs/internal/entities"
)

type Request struct {
	repository     Repository
	tripService    TripService
	paymentService PaymentService
	userService    UserService
	txManager      TxManager
}

func New(
	repository Repository,
	tripService TripService,
	paymentService PaymentService,
	userService UserService,
	txManager TxManager,
) *Request {
	return &Request{
		repository:     repository,
		tripService:    tripService,
		paymentService: paymentService,
		userService:    userService,
		txManager:      txManager,
	}
}

func (s *Request) CreateRequest(ctx context.Context, actor *entities.User, requestModify entities.RequestModify) (string, error) {
	if !actor.CanSend() {
		return "", ErrNotSender
	}
	if !actor.IsApproved() {
		return "", ErrNotVerified
	}

	if !isFilled(
		requestModify.DepartureCity,
		requestModify.DestinationCity,
		requestModify.PickupAddress,
		requestModify.DeliveryAddress,
		requestModify.DocumentDescription,
	) || requestModify.OfferedAmount == nil {
		return "", ErrMissingRequiredFields
	}

	if !isValidAmount(*requestModify.OfferedAmount) {
		return "", ErrInvalidAmount
	}

	if requestModify.Urgency == nil {
		requestModify.Urgency = pointer.To(entities.DefaultUrgency)
	}
	if !isValidUrgency(requestModify.Urgency.String()) {
		return "", ErrInvalidUrgency
	}

	requestModify.ID = pointer.To(uuid.NewString())
	requestModify.SenderID = &actor.ID

	id, err := s.repository.Create(ctx, requestModify)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	return id, nil
}

func (s *Request) GetRequest(ctx context.Context, id string) (*entities.DeliveryRequest, error) {
	requestEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	return requestEntity, nil
}

func (s *Request) GetSenderRequests(ctx context.Context, senderID string) ([]entities.DeliveryRequest, error) {
	requests, err := s.repository.GetBySender(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sender requests: %w", err)
	}

	return requests, nil
}

func (s *Request) GetOpenRequests(ctx context.Context, filter entities.RequestFilter) ([]entities.RequestCandidate, error) {
	if filter.Status == "" {
		filter.Status = entities.RequestOpen
	}

	requests, err := s.repository.GetOpen(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get open requests: %w", err)
	}

	return requests, nil
}

// ConfirmPickup: только сматченный перевозчик, только из статуса matched.
func (s *Request) ConfirmPickup(ctx context.Context, requestID, travelerID string) error {
	requestEntity, err := s.repository.GetByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("get request: %w", err)
	}

	if !isMatchedTraveler(requestEntity, travelerID) {
		// чужие заявки неотличимы от несуществующих
		return ErrRequestNotFound
	}
	if requestEntity.Status != entities.RequestMatched {
		return ErrInvalidStatusTransition
	}

	if err := s.repository.MarkPickedUp(ctx, requestID); err != nil {
		return fmt.Errorf("mark picked up: %w", err)
	}

	return nil
}

// MarkInTransit принимает единственный целевой статус in_transit.
func (s *Request) MarkInTransit(ctx context.Context, requestID, travelerID string, target entities.RequestStatusType) error {
	if target != entities.RequestInTransit {
		return ErrInvalidStatus
	}

	requestEntity, err := s.repository.GetByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("get request: %w", err)
	}

	if !isMatchedTraveler(requestEntity, travelerID) {
		return ErrRequestNotFound
	}
	if requestEntity.Status != entities.RequestPickedUp {
		return ErrInvalidStatusTransition
	}

	if err := s.repository.MarkInTransit(ctx, requestID); err != nil {
		return fmt.Errorf("mark in transit: %w", err)
	}

	return nil
}

// ConfirmDelivery сверяет tracking code и одной транзакцией переводит заявку
// в delivered, освобождает эскроу и поднимает статистику перевозчика.
// При неверном коде ни статус, ни эскроу не меняются.
func (s *Request) ConfirmDelivery(ctx context.Context, requestID, travelerID, trackingCode string) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		requestEntity, err := s.repository.GetByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}

		if !isMatchedTraveler(requestEntity, travelerID) {
			return ErrRequestNotFound
		}
		if requestEntity.Status != entities.RequestPickedUp &&
			requestEntity.Status != entities.RequestInTransit {
			return ErrInvalidStatusTransition
		}
		if trackingCode == "" || requestEntity.TrackingCode != trackingCode {
			return ErrInvalidTrackingCode
		}

		if err := s.repository.MarkDelivered(ctx, requestID); err != nil {
			return fmt.Errorf("mark delivered: %w", err)
		}

		if err := s.paymentService.ReleaseEscrow(ctx, requestID); err != nil {
			return fmt.Errorf("release escrow: %w", err)
		}

		if err := s.userService.RecordSuccessfulDelivery(ctx, travelerID); err != nil {
			return fmt.Errorf("record delivery: %w", err)
		}

		return nil
	})

	return err
}

// CancelRequest: только владелец, только до передачи документов.
// Возврат слота поездке и refund эскроу выполняются той же транзакцией.
func (s *Request) CancelRequest(ctx context.Context, requestID, senderID string) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		requestEntity, err := s.repository.GetByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}

		if requestEntity.SenderID != senderID {
			return ErrRequestNotFound
		}
		if !requestEntity.Status.IsCancellable() {
			return ErrNotCancelled
		}

		if err := s.repository.Cancel(ctx, requestID, ""); err != nil {
			return fmt.Errorf("cancel request: %w", err)
		}

		if requestEntity.MatchedTripID != nil {
			if err := s.tripService.RestoreTripSlot(ctx, *requestEntity.MatchedTripID); err != nil {
				return fmt.Errorf("restore slot: %w", err)
			}
			if err := s.paymentService.RefundEscrow(ctx, requestID); err != nil {
				return fmt.Errorf("refund escrow: %w", err)
			}
		}

		return nil
	})

	return err
}

// RefuseDelivery - отказ перевозчика от сматченной заявки: заявка отменяется
// с сохранением причины, слот возвращается, эскроу рефандится.
func (s *Request) RefuseDelivery(ctx context.Context, requestID, travelerID, reason string) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		requestEntity, err := s.repository.GetByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}

		if !isMatchedTraveler(requestEntity, travelerID) {
			return ErrRequestNotFound
		}
		if requestEntity.Status != entities.RequestMatched &&
			requestEntity.Status != entities.RequestPickedUp {
			return ErrInvalidStatusTransition
		}

		if err := s.repository.Cancel(ctx, requestID, reason); err != nil {
			return fmt.Errorf("cancel request: %w", err)
		}

		if requestEntity.MatchedTripID != nil {
			if err := s.tripService.RestoreTripSlot(ctx, *requestEntity.MatchedTripID); err != nil {
				return fmt.Errorf("restore slot: %w", err)
			}
		}

		if err := s.paymentService.RefundEscrow(ctx, requestID); err != nil {
			return fmt.Errorf("refund escrow: %w", err)
		}

		return nil
	})

	return err
}

func isMatchedTraveler(requestEntity *entities.DeliveryRequest, travelerID string) bool {
	return requestEntity.MatchedTravelerID != nil && *requestEntity.MatchedTravelerID == travelerID
}
