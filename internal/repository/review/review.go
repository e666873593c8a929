package review

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"safiridocs/internal/entities"
	"safiridocs/internal/repository"
	"safiridocs/internal/service/review"
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

func (r *Repository) Create(ctx context.Context, reviewModifyEntity entities.ReviewModify) (string, error) {
	reviewModifyModel := FromDomainModify(&reviewModifyEntity)
	query := `INSERT INTO reviews (delivery_request_id, reviewer_id, reviewee_id,
			rating, review_text, review_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id string
	err := r.querier.QueryRow(
		ctx,
		query,
		reviewModifyModel.DeliveryRequestID,
		reviewModifyModel.ReviewerID,
		reviewModifyModel.RevieweeID,
		reviewModifyModel.Rating,
		reviewModifyModel.ReviewText,
		reviewModifyModel.ReviewType,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return "", review.ErrAlreadyReviewed
		}
		return "", fmt.Errorf("unexpected review repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByUser(ctx context.Context, userID string) ([]entities.ReviewWithAuthor, error) {
	query := `
		SELECT rv.id, rv.delivery_request_id, rv.reviewer_id, rv.reviewee_id,
			rv.rating, rv.review_text, rv.review_type, rv.created_at,
			u.full_name
		FROM reviews rv
		JOIN users u ON u.id = rv.reviewer_id
		WHERE rv.reviewee_id = $1
		ORDER BY rv.created_at DESC
	`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected review repository getbyuser error: %w", err)
	}
	defer rows.Close()

	reviews := make([]entities.ReviewWithAuthor, 0, 8)
	for rows.Next() {
		var reviewModel ReviewWithAuthorDB
		err := rows.Scan(
			&reviewModel.Review.ID,
			&reviewModel.Review.DeliveryRequestID,
			&reviewModel.Review.ReviewerID,
			&reviewModel.Review.RevieweeID,
			&reviewModel.Review.Rating,
			&reviewModel.Review.ReviewText,
			&reviewModel.Review.ReviewType,
			&reviewModel.Review.CreatedAt,
			&reviewModel.ReviewerName,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected review repository getbyuser error: %w", err)
		}
		reviews = append(reviews, *ToDomainWithAuthor(&reviewModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected review repository getbyuser error: %w", err)
	}

	return reviews, nil
}

// RecalculateAverageRating пересчитывает средний рейтинг одним UPDATE:
// чтение агрегата в приложение открывало бы окно для гонки.
func (r *Repository) RecalculateAverageRating(ctx context.Context, userID string) error {
	query := `UPDATE users
		SET average_rating = COALESCE(
				(SELECT ROUND(AVG(rating)::numeric, 2) FROM reviews WHERE reviewee_id = $1),
				0),
			updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("unexpected review repository recalculate rating error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return review.ErrUserNotFound
	}

	return nil
}
