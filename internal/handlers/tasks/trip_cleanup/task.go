package trip_cleanup

import (
	"context"
	"time"

	"safiridocs/pkg/logger"
)

type Service interface {
	CompleteExpiredTrips(ctx context.Context) (int64, error)
}

type TripCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewTripCleanup(log logger.Logger, service Service, interval time.Duration) *TripCleanup {
	return &TripCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (t *TripCleanup) TTL() time.Duration {
	return t.interval
}

func (t *TripCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	rowsAffected, err := t.service.CompleteExpiredTrips(ctxWithTimeout)

	if rowsAffected > 0 {
		t.log.With(
			logger.NewField("completed_trips", rowsAffected),
		).Info("trip cleanup")
	}

	return err
}

func (t *TripCleanup) Info() string {
	return "trip cleanup"
}
