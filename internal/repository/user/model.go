package user

import "time"

type UserDB struct {
	ID                   string
	Email                string
	Phone                string
	PasswordHash         string
	FullName             string
	Role                 string
	VerificationStatus   string
	AccountStatus        string
	TrustScore           int
	AverageRating        string
	TotalDeliveries      int
	SuccessfulDeliveries int
	PhoneVerifiedAt      *time.Time
	LastLoginAt          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type UserModifyDB struct {
	ID           *string
	Email        *string
	Phone        *string
	PasswordHash *string
	FullName     *string
	Role         *string
	OTPCode      *string
}
