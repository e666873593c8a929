//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=review_test
package review

import (
	"context"

	"safiridocs/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, reviewModifyEntity entities.ReviewModify) (string, error)
	GetByUser(ctx context.Context, userID string) ([]entities.ReviewWithAuthor, error)
	// RecalculateAverageRating пересчитывает средний рейтинг одним
	// UPDATE ... FROM (SELECT AVG ...) - без чтения в приложение.
	RecalculateAverageRating(ctx context.Context, userID string) error
}

type RequestProvider interface {
	GetByID(ctx context.Context, requestID string) (*entities.DeliveryRequest, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
