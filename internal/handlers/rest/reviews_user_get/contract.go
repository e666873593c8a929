//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reviews_user_get_test
package reviews_user_get

import (
	"context"
	"time"

	"safiridocs/internal/entities"
	"safiridocs/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListForUser(ctx context.Context, userID string) ([]entities.ReviewWithAuthor, error)
}

type ReviewResponse struct {
	ID           string    `json:"id"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	ReviewText   string    `json:"review_text,omitempty"`
	ReviewType   string    `json:"review_type"`
	CreatedAt    time.Time `json:"created_at"`
}
