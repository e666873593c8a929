//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_apply_post_test
package trip_apply_post

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
	Apply(ctx context.Context, actor *entities.User, tripID, requestID string) (*entities.Match, error)
}

type ApplyRequest struct {
	RequestID string `json:"request_id"`
}

// ApplyResponse не содержит tracking_code: код передачи знает только отправитель.
type ApplyResponse struct {
	RequestID  string    `json:"request_id"`
	TripID     string    `json:"trip_id"`
	TravelerID string    `json:"traveler_id"`
	MatchedAt  time.Time `json:"matched_at"`
}
