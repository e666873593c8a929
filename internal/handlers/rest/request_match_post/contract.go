//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_match_post_test
package request_match_post

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
	Match(ctx context.Context, actor *entities.User, requestID, tripID, travelerID string) (*entities.Match, error)
}

type MatchRequest struct {
	TripID     string `json:"trip_id"`
	TravelerID string `json:"traveler_id"`
}

type MatchResponse struct {
	RequestID    string    `json:"request_id"`
	TripID       string    `json:"trip_id"`
	TravelerID   string    `json:"traveler_id"`
	TrackingCode string    `json:"tracking_code"`
	MatchedAt    time.Time `json:"matched_at"`
}
