package review

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/AlekSi/pointer"
	"safiridocs/internal/entities"
)

const maxReviewTextLength = 1000

// Review принимает по одному отзыву от каждой стороны завершенной доставки
// и поддерживает актуальный средний рейтинг получателя отзыва.
type Review struct {
	repository Repository
	requests   RequestProvider
	txManager  TxManager
}

func New(repository Repository, requests RequestProvider, txManager TxManager) *Review {
	return &Review{
		repository: repository,
		requests:   requests,
		txManager:  txManager,
	}
}

// Submit создает отзыв по доставленной заявке. Направление отзыва выводится
// из роли автора в этой конкретной доставке, а не из роли аккаунта.
func (s *Review) Submit(ctx context.Context, actor *entities.User, requestID string, rating int, text string) (string, error) {
	if rating < entities.MinRating || rating > entities.MaxRating {
		return "", ErrInvalidRating
	}

	text = truncateText(strings.TrimSpace(text))

	requestEntity, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return "", fmt.Errorf("get request: %w", err)
	}
	if requestEntity.Status != entities.RequestDelivered {
		return "", ErrRequestNotDone
	}

	reviewType, revieweeID, err := resolveDirection(actor, requestEntity)
	if err != nil {
		return "", err
	}

	reviewModify := entities.ReviewModify{
		DeliveryRequestID: pointer.To(requestID),
		ReviewerID:        pointer.To(actor.ID),
		RevieweeID:        pointer.To(revieweeID),
		Rating:            pointer.To(rating),
		ReviewText:        pointer.To(text),
		ReviewType:        pointer.To(reviewType),
	}

	var reviewID string
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		reviewID, err = s.repository.Create(ctx, reviewModify)
		if err != nil {
			return fmt.Errorf("create review: %w", err)
		}

		if err := s.repository.RecalculateAverageRating(ctx, revieweeID); err != nil {
			return fmt.Errorf("recalculate rating: %w", err)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return reviewID, nil
}

// ListForUser возвращает отзывы, полученные пользователем, свежие сверху.
func (s *Review) ListForUser(ctx context.Context, userID string) ([]entities.ReviewWithAuthor, error) {
	reviews, err := s.repository.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	return reviews, nil
}

func resolveDirection(actor *entities.User, requestEntity *entities.DeliveryRequest) (entities.ReviewType, string, error) {
	if requestEntity.SenderID == actor.ID {
		if requestEntity.MatchedTravelerID == nil {
			return "", "", ErrRequestNotDone
		}

		return entities.SenderToTraveler, *requestEntity.MatchedTravelerID, nil
	}

	if requestEntity.MatchedTravelerID != nil && *requestEntity.MatchedTravelerID == actor.ID {
		return entities.TravelerToSender, requestEntity.SenderID, nil
	}

	return "", "", ErrNotParticipant
}

// truncateText режет длинный текст по границе руны, не по байту.
func truncateText(text string) string {
	if utf8.RuneCountInString(text) <= maxReviewTextLength {
		return text
	}

	runes := []rune(text)

	return string(runes[:maxReviewTextLength])
}
