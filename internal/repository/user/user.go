package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"safiridocs/internal/entities"
	"safiridocs/internal/repository"
	"safiridocs/internal/service/user"
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

const userColumns = `id, email, phone, password_hash, full_name, role,
		verification_status, account_status, trust_score, average_rating::text,
		total_deliveries, successful_deliveries, phone_verified_at, last_login_at,
		created_at, updated_at`

func (r *Repository) Create(ctx context.Context, userModifyEntity entities.UserModify) (string, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)
	query := `INSERT INTO users (id, email, phone, password_hash, full_name, role, otp_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id string
	err := r.querier.QueryRow(
		ctx,
		query,
		userModifyModel.ID,
		userModifyModel.Email,
		userModifyModel.Phone,
		userModifyModel.PasswordHash,
		userModifyModel.FullName,
		userModifyModel.Role,
		userModifyModel.OTPCode,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return "", user.ErrUserExists
		}
		return "", fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1`

	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE email = $1`

	return r.getOne(ctx, query, email)
}

func (r *Repository) UpdateLastLogin(ctx context.Context, id string) error {
	query := `UPDATE users
		SET last_login_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected user repository update last login error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// ConfirmPhone сверяет код и подтверждает телефон одним условным UPDATE.
func (r *Repository) ConfirmPhone(ctx context.Context, phone, code string) error {
	query := `UPDATE users
		SET phone_verified_at = NOW(),
			otp_code = NULL,
			updated_at = NOW()
		WHERE phone = $1
		  AND otp_code = $2
		  AND phone_verified_at IS NULL`

	result, err := r.querier.Exec(ctx, query, phone, code)
	if err != nil {
		return fmt.Errorf("unexpected user repository confirm phone error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrInvalidOTP
	}

	return nil
}

// BumpTravelerStats инкрементирует счетчики доставок и trust score
// с потолком, не читая строку в приложение.
func (r *Repository) BumpTravelerStats(ctx context.Context, travelerID string) error {
	query := `UPDATE users
		SET total_deliveries = total_deliveries + 1,
			successful_deliveries = successful_deliveries + 1,
			trust_score = LEAST(trust_score + $2, $3),
			updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, travelerID, entities.TrustScoreStep, entities.MaxTrustScore)
	if err != nil {
		return fmt.Errorf("unexpected user repository bump stats error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.User, error) {
	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, arg).
		Scan(
			&userModel.ID,
			&userModel.Email,
			&userModel.Phone,
			&userModel.PasswordHash,
			&userModel.FullName,
			&userModel.Role,
			&userModel.VerificationStatus,
			&userModel.AccountStatus,
			&userModel.TrustScore,
			&userModel.AverageRating,
			&userModel.TotalDeliveries,
			&userModel.SuccessfulDeliveries,
			&userModel.PhoneVerifiedAt,
			&userModel.LastLoginAt,
			&userModel.CreatedAt,
			&userModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}

		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}

	return ToDomain(&userModel), nil
}
