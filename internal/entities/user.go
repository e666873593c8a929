package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID                   string
	Email                string
	Phone                string
	PasswordHash         string
	FullName             string
	Role                 UserRoleType
	VerificationStatus   VerificationStatusType
	AccountStatus        AccountStatusType
	TrustScore           int
	AverageRating        decimal.Decimal
	TotalDeliveries      int
	SuccessfulDeliveries int
	PhoneVerifiedAt      *time.Time
	LastLoginAt          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// CanSend сообщает, может ли пользователь выступать отправителем.
// Роль "both" нигде не сравнивается напрямую - только через capability-методы.
func (u *User) CanSend() bool {
	return u.Role == RoleSender || u.Role == RoleBoth
}

// CanCarry сообщает, может ли пользователь выступать перевозчиком.
func (u *User) CanCarry() bool {
	return u.Role == RoleTraveler || u.Role == RoleBoth
}

func (u *User) IsApproved() bool {
	return u.VerificationStatus == VerificationApproved
}

func (u *User) IsActive() bool {
	return u.AccountStatus == AccountActive
}

type UserRoleType string

const (
	RoleSender   UserRoleType = "sender"
	RoleTraveler UserRoleType = "traveler"
	RoleBoth     UserRoleType = "both"
)

func (t UserRoleType) String() string {
	return string(t)
}

type VerificationStatusType string

const (
	VerificationPending  VerificationStatusType = "pending"
	VerificationApproved VerificationStatusType = "approved"
	VerificationRejected VerificationStatusType = "rejected"
)

const DefaultVerificationStatus = VerificationPending

func (t VerificationStatusType) String() string {
	return string(t)
}

type AccountStatusType string

const (
	AccountActive    AccountStatusType = "active"
	AccountSuspended AccountStatusType = "suspended"
	AccountBanned    AccountStatusType = "banned"
)

const DefaultAccountStatus = AccountActive

func (t AccountStatusType) String() string {
	return string(t)
}

// Базовый trust score нового пользователя и потолок, выше которого
// автоматические инкременты не поднимают.
const (
	BaselineTrustScore = 50
	MaxTrustScore      = 95
	TrustScoreStep     = 5
)

type UserModify struct {
	ID           *string
	Email        *string
	Phone        *string
	PasswordHash *string
	FullName     *string
	Role         *UserRoleType
	OTPCode      *string
}
