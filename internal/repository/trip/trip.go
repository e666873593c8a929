package trip

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"safiridocs/internal/entities"
	"safiridocs/internal/service/matching"
	"safiridocs/internal/service/trip"
)

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

const tripColumns = `id, traveler_id, departure_city, destination_city,
		departure_date, arrival_date, flight_number, airline,
		max_documents, available_slots, status, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, tripModifyEntity entities.TripModify) (string, error) {
	tripModifyModel := FromDomainModify(&tripModifyEntity)
	query := `INSERT INTO trips (id, traveler_id, departure_city, destination_city,
			departure_date, arrival_date, flight_number, airline,
			max_documents, available_slots)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id`

	var id string
	err := r.querier.QueryRow(
		ctx,
		query,
		tripModifyModel.ID,
		tripModifyModel.TravelerID,
		tripModifyModel.DepartureCity,
		tripModifyModel.DestinationCity,
		tripModifyModel.DepartureDate,
		tripModifyModel.ArrivalDate,
		tripModifyModel.FlightNumber,
		tripModifyModel.Airline,
		tripModifyModel.MaxDocuments,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("unexpected trip repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Trip, error) {
	query := `SELECT ` + tripColumns + `
		FROM trips
		WHERE id = $1`

	var tripModel TripDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&tripModel.ID,
		&tripModel.TravelerID,
		&tripModel.DepartureCity,
		&tripModel.DestinationCity,
		&tripModel.DepartureDate,
		&tripModel.ArrivalDate,
		&tripModel.FlightNumber,
		&tripModel.Airline,
		&tripModel.MaxDocuments,
		&tripModel.AvailableSlots,
		&tripModel.Status,
		&tripModel.CreatedAt,
		&tripModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, trip.ErrTripNotFound
		}

		return nil, fmt.Errorf("unexpected trip repository getbyid error: %w", err)
	}

	return ToDomain(&tripModel), nil
}

func (r *Repository) GetByTraveler(ctx context.Context, travelerID string) ([]entities.Trip, error) {
	query := `SELECT ` + tripColumns + `
		FROM trips
		WHERE traveler_id = $1
		ORDER BY departure_date DESC`

	rows, err := r.querier.Query(ctx, query, travelerID)
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository getbytraveler error: %w", err)
	}
	defer rows.Close()

	tripModels := make([]TripDB, 0, 8)
	for rows.Next() {
		var tripModel TripDB
		err := rows.Scan(
			&tripModel.ID,
			&tripModel.TravelerID,
			&tripModel.DepartureCity,
			&tripModel.DestinationCity,
			&tripModel.DepartureDate,
			&tripModel.ArrivalDate,
			&tripModel.FlightNumber,
			&tripModel.Airline,
			&tripModel.MaxDocuments,
			&tripModel.AvailableSlots,
			&tripModel.Status,
			&tripModel.CreatedAt,
			&tripModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected trip repository getbytraveler error: %w", err)
		}
		tripModels = append(tripModels, tripModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository getbytraveler error: %w", err)
	}

	return ToDomainList(tripModels), nil
}

// ReserveSlot забирает один слот условным UPDATE: проигравший гонку за
// последний слот получает ноль затронутых строк.
func (r *Repository) ReserveSlot(ctx context.Context, id string) error {
	query := `UPDATE trips
		SET available_slots = available_slots - 1,
			updated_at = NOW()
		WHERE id = $1
		  AND status = 'active'
		  AND available_slots > 0`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected trip repository reserve slot error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return matching.ErrNoAvailableSlots
	}

	return nil
}

// RestoreSlot возвращает слот, не позволяя превысить max_documents.
func (r *Repository) RestoreSlot(ctx context.Context, id string) error {
	query := `UPDATE trips
		SET available_slots = available_slots + 1,
			updated_at = NOW()
		WHERE id = $1
		  AND available_slots < max_documents`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected trip repository restore slot error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return trip.ErrSlotsFull
	}

	return nil
}

func (r *Repository) CompleteExpired(ctx context.Context) (int64, error) {
	query := `UPDATE trips
		SET status = 'completed',
			updated_at = NOW()
		WHERE status = 'active'
		  AND arrival_date < NOW()`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected trip repository complete expired error: %w", err)
	}

	return result.RowsAffected(), nil
}

// GetCandidatesForRequest подбирает перевозчиков по точному совпадению пары
// городов: надежные сверху.
func (r *Repository) GetCandidatesForRequest(ctx context.Context, departureCity, destinationCity string) ([]entities.TravelerCandidate, error) {
	query := `
		SELECT t.id, t.traveler_id, t.departure_city, t.destination_city,
			t.departure_date, t.arrival_date, t.flight_number, t.airline,
			t.max_documents, t.available_slots, t.status, t.created_at, t.updated_at,
			u.full_name, u.trust_score, u.average_rating::text, u.total_deliveries
		FROM trips t
		JOIN users u ON u.id = t.traveler_id
		WHERE t.departure_city = $1
		  AND t.destination_city = $2
		  AND t.status = 'active'
		  AND t.available_slots > 0
		  AND t.departure_date >= NOW()
		  AND u.verification_status = 'approved'
		  AND u.account_status = 'active'
		ORDER BY u.trust_score DESC, u.average_rating DESC, t.departure_date ASC
	`

	rows, err := r.querier.Query(ctx, query, departureCity, destinationCity)
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository candidates error: %w", err)
	}
	defer rows.Close()

	candidates := make([]entities.TravelerCandidate, 0, 8)
	for rows.Next() {
		var candidateModel TravelerCandidateDB
		err := rows.Scan(
			&candidateModel.Trip.ID,
			&candidateModel.Trip.TravelerID,
			&candidateModel.Trip.DepartureCity,
			&candidateModel.Trip.DestinationCity,
			&candidateModel.Trip.DepartureDate,
			&candidateModel.Trip.ArrivalDate,
			&candidateModel.Trip.FlightNumber,
			&candidateModel.Trip.Airline,
			&candidateModel.Trip.MaxDocuments,
			&candidateModel.Trip.AvailableSlots,
			&candidateModel.Trip.Status,
			&candidateModel.Trip.CreatedAt,
			&candidateModel.Trip.UpdatedAt,
			&candidateModel.TravelerName,
			&candidateModel.TrustScore,
			&candidateModel.AverageRating,
			&candidateModel.TotalDeliveries,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected trip repository candidates error: %w", err)
		}
		candidates = append(candidates, *ToCandidateDomain(&candidateModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository candidates error: %w", err)
	}

	return candidates, nil
}
