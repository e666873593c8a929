package request

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"safiridocs/internal/entities"
	"safiridocs/internal/service/matching"
	"safiridocs/internal/service/request"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

const requestColumns = `id, sender_id, departure_city, destination_city,
		pickup_address, delivery_address, document_description, document_type,
		offered_amount::text, urgency, status, tracking_code,
		matched_trip_id, matched_traveler_id, matched_at,
		picked_up_at, delivered_at, cancellation_reason, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, requestModifyEntity entities.RequestModify) (string, error) {
	requestModifyModel := FromDomainModify(&requestModifyEntity)
	query := `INSERT INTO delivery_requests (id, sender_id, departure_city, destination_city,
			pickup_address, delivery_address, document_description, document_type,
			offered_amount, urgency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::numeric, $10)
		RETURNING id`

	var id string
	err := r.querier.QueryRow(
		ctx,
		query,
		requestModifyModel.ID,
		requestModifyModel.SenderID,
		requestModifyModel.DepartureCity,
		requestModifyModel.DestinationCity,
		requestModifyModel.PickupAddress,
		requestModifyModel.DeliveryAddress,
		requestModifyModel.DocumentDescription,
		requestModifyModel.DocumentType,
		requestModifyModel.OfferedAmount,
		requestModifyModel.Urgency,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("unexpected request repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.DeliveryRequest, error) {
	query := `SELECT ` + requestColumns + `
		FROM delivery_requests
		WHERE id = $1`

	var requestModel RequestDB
	err := scanRequest(r.querier.QueryRow(ctx, query, id), &requestModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, request.ErrRequestNotFound
		}

		return nil, fmt.Errorf("unexpected request repository getbyid error: %w", err)
	}

	return ToDomain(&requestModel), nil
}

func (r *Repository) GetBySender(ctx context.Context, senderID string) ([]entities.DeliveryRequest, error) {
	query := `SELECT ` + requestColumns + `
		FROM delivery_requests
		WHERE sender_id = $1
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, senderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected request repository getbysender error: %w", err)
	}
	defer rows.Close()

	requestModels := make([]RequestDB, 0, 8)
	for rows.Next() {
		var requestModel RequestDB
		if err := scanRequest(rows, &requestModel); err != nil {
			return nil, fmt.Errorf("unexpected request repository getbysender error: %w", err)
		}
		requestModels = append(requestModels, requestModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected request repository getbysender error: %w", err)
	}

	return ToDomainList(requestModels), nil
}

// GetOpen - витрина заявок для перевозчиков, с именем и trust score
// отправителя. Фильтры опциональные, поэтому запрос собирается динамически.
func (r *Repository) GetOpen(ctx context.Context, filter entities.RequestFilter) ([]entities.RequestCandidate, error) {
	builder := qb.Select(
		"d.id", "d.sender_id", "d.departure_city", "d.destination_city",
		"d.pickup_address", "d.delivery_address", "d.document_description", "d.document_type",
		"d.offered_amount::text", "d.urgency", "d.status", "d.tracking_code",
		"d.matched_trip_id", "d.matched_traveler_id", "d.matched_at",
		"d.picked_up_at", "d.delivered_at", "d.cancellation_reason", "d.created_at", "d.updated_at",
		"u.full_name", "u.trust_score",
	).
		From("delivery_requests d").
		Join("users u ON u.id = d.sender_id").
		Where(sq.Eq{"d.status": filter.Status.String()}).
		OrderBy("d.created_at DESC")

	if filter.DepartureCity != "" {
		builder = builder.Where(sq.Eq{"d.departure_city": filter.DepartureCity})
	}
	if filter.DestinationCity != "" {
		builder = builder.Where(sq.Eq{"d.destination_city": filter.DestinationCity})
	}
	if filter.Urgency != "" {
		builder = builder.Where(sq.Eq{"d.urgency": filter.Urgency.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected request repository getopen error: %w", err)
	}

	return r.queryCandidates(ctx, query, args...)
}

// GetCandidatesForTrip - открытые заявки по паре городов поездки,
// дорогие сверху.
func (r *Repository) GetCandidatesForTrip(ctx context.Context, departureCity, destinationCity string) ([]entities.RequestCandidate, error) {
	query := `
		SELECT d.id, d.sender_id, d.departure_city, d.destination_city,
			d.pickup_address, d.delivery_address, d.document_description, d.document_type,
			d.offered_amount::text, d.urgency, d.status, d.tracking_code,
			d.matched_trip_id, d.matched_traveler_id, d.matched_at,
			d.picked_up_at, d.delivered_at, d.cancellation_reason, d.created_at, d.updated_at,
			u.full_name, u.trust_score
		FROM delivery_requests d
		JOIN users u ON u.id = d.sender_id
		WHERE d.status = 'open'
		  AND d.departure_city = $1
		  AND d.destination_city = $2
		ORDER BY d.offered_amount DESC, d.created_at DESC
	`

	return r.queryCandidates(ctx, query, departureCity, destinationCity)
}

// BindMatch привязывает заявку к поездке условным UPDATE: если заявка уже
// не open, матч не состоялся.
func (r *Repository) BindMatch(ctx context.Context, match entities.Match) error {
	query := `UPDATE delivery_requests
		SET status = 'matched',
			matched_trip_id = $2,
			matched_traveler_id = $3,
			tracking_code = $4,
			matched_at = $5,
			updated_at = NOW()
		WHERE id = $1
		  AND status = 'open'`

	result, err := r.querier.Exec(
		ctx,
		query,
		match.RequestID,
		match.TripID,
		match.TravelerID,
		match.TrackingCode,
		match.MatchedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected request repository bind match error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return matching.ErrAlreadyMatched
	}

	return nil
}

func (r *Repository) MarkPickedUp(ctx context.Context, id string) error {
	query := `UPDATE delivery_requests
		SET status = 'picked_up',
			picked_up_at = NOW(),
			updated_at = NOW()
		WHERE id = $1
		  AND status = 'matched'`

	return r.transition(ctx, query, id)
}

func (r *Repository) MarkInTransit(ctx context.Context, id string) error {
	query := `UPDATE delivery_requests
		SET status = 'in_transit',
			updated_at = NOW()
		WHERE id = $1
		  AND status = 'picked_up'`

	return r.transition(ctx, query, id)
}

func (r *Repository) MarkDelivered(ctx context.Context, id string) error {
	query := `UPDATE delivery_requests
		SET status = 'delivered',
			delivered_at = NOW(),
			updated_at = NOW()
		WHERE id = $1
		  AND status IN ('picked_up', 'in_transit')`

	return r.transition(ctx, query, id)
}

// Cancel покрывает и отмену отправителем (open|matched), и отказ
// перевозчика (matched|picked_up) с указанной им причиной.
func (r *Repository) Cancel(ctx context.Context, id, reason string) error {
	query := `UPDATE delivery_requests
		SET status = 'cancelled',
			cancellation_reason = $2,
			updated_at = NOW()
		WHERE id = $1
		  AND status IN ('open', 'matched', 'picked_up')`

	result, err := r.querier.Exec(ctx, query, id, reason)
	if err != nil {
		return fmt.Errorf("unexpected request repository transition error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return request.ErrInvalidStatusTransition
	}

	return nil
}

func (r *Repository) transition(ctx context.Context, query, id string) error {
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected request repository transition error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return request.ErrInvalidStatusTransition
	}

	return nil
}

func (r *Repository) queryCandidates(ctx context.Context, query string, args ...interface{}) ([]entities.RequestCandidate, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected request repository candidates error: %w", err)
	}
	defer rows.Close()

	candidates := make([]entities.RequestCandidate, 0, 8)
	for rows.Next() {
		var candidateModel RequestCandidateDB
		err := rows.Scan(
			&candidateModel.Request.ID,
			&candidateModel.Request.SenderID,
			&candidateModel.Request.DepartureCity,
			&candidateModel.Request.DestinationCity,
			&candidateModel.Request.PickupAddress,
			&candidateModel.Request.DeliveryAddress,
			&candidateModel.Request.DocumentDescription,
			&candidateModel.Request.DocumentType,
			&candidateModel.Request.OfferedAmount,
			&candidateModel.Request.Urgency,
			&candidateModel.Request.Status,
			&candidateModel.Request.TrackingCode,
			&candidateModel.Request.MatchedTripID,
			&candidateModel.Request.MatchedTravelerID,
			&candidateModel.Request.MatchedAt,
			&candidateModel.Request.PickedUpAt,
			&candidateModel.Request.DeliveredAt,
			&candidateModel.Request.CancellationReason,
			&candidateModel.Request.CreatedAt,
			&candidateModel.Request.UpdatedAt,
			&candidateModel.SenderName,
			&candidateModel.TrustScore,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected request repository candidates error: %w", err)
		}
		candidates = append(candidates, *ToCandidateDomain(&candidateModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected request repository candidates error: %w", err)
	}

	return candidates, nil
}

func scanRequest(row pgx.Row, requestModel *RequestDB) error {
	return row.Scan(
		&requestModel.ID,
		&requestModel.SenderID,
		&requestModel.DepartureCity,
		&requestModel.DestinationCity,
		&requestModel.PickupAddress,
		&requestModel.DeliveryAddress,
		&requestModel.DocumentDescription,
		&requestModel.DocumentType,
		&requestModel.OfferedAmount,
		&requestModel.Urgency,
		&requestModel.Status,
		&requestModel.TrackingCode,
		&requestModel.MatchedTripID,
		&requestModel.MatchedTravelerID,
		&requestModel.MatchedAt,
		&requestModel.PickedUpAt,
		&requestModel.DeliveredAt,
		&requestModel.CancellationReason,
		&requestModel.CreatedAt,
		&requestModel.UpdatedAt,
	)
}
