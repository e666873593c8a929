package user

import (
	"github.com/shopspring/decimal"
	"safiridocs/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	rating, err := decimal.NewFromString(u.AverageRating)
	if err != nil {
		rating = decimal.Zero
	}

	return &entities.User{
		ID:                   u.ID,
		Email:                u.Email,
		Phone:                u.Phone,
		PasswordHash:         u.PasswordHash,
		FullName:             u.FullName,
		Role:                 entities.UserRoleType(u.Role),
		VerificationStatus:   entities.VerificationStatusType(u.VerificationStatus),
		AccountStatus:        entities.AccountStatusType(u.AccountStatus),
		TrustScore:           u.TrustScore,
		AverageRating:        rating,
		TotalDeliveries:      u.TotalDeliveries,
		SuccessfulDeliveries: u.SuccessfulDeliveries,
		PhoneVerifiedAt:      u.PhoneVerifiedAt,
		LastLoginAt:          u.LastLoginAt,
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
	}
}

func FromDomainModify(userModify *entities.UserModify) *UserModifyDB {
	if userModify == nil {
		return nil
	}
	userDB := &UserModifyDB{}

	if userModify.ID != nil {
		userDB.ID = userModify.ID
	}
	if userModify.Email != nil {
		userDB.Email = userModify.Email
	}
	if userModify.Phone != nil {
		userDB.Phone = userModify.Phone
	}
	if userModify.PasswordHash != nil {
		userDB.PasswordHash = userModify.PasswordHash
	}
	if userModify.FullName != nil {
		userDB.FullName = userModify.FullName
	}
	if userModify.Role != nil {
		role := userModify.Role.String()
		userDB.Role = &role
	}
	if userModify.OTPCode != nil {
		userDB.OTPCode = userModify.OTPCode
	}

	return userDB
}
