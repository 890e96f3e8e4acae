// Package auth implements the authentication capability over the users
// table: bcrypt password hashes, HS256 access tokens and persisted refresh
// tokens.
package auth

import (
	"time"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/user"
)

// accountDTO is the users row as the auth adapter sees it. It shares the
// table with userrepo but additionally owns the password hash column.
type accountDTO struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Name             string `gorm:"size:120"`
	Email            string `gorm:"size:254;uniqueIndex"`
	DocumentNumber   string `gorm:"size:20;uniqueIndex"`
	Phone            string `gorm:"size:20;uniqueIndex"`
	Role             string `gorm:"size:16"`
	Status           string `gorm:"size:16;index"`
	RegistrationDate time.Time
	PasswordHash     string `gorm:"size:60"`
}

func (accountDTO) TableName() string {
	return "users"
}

// RefreshTokenDTO is a persisted refresh token. Tokens are opaque UUIDs;
// rotation deletes the old row and inserts a new one.
type RefreshTokenDTO struct {
	Token     string `gorm:"primaryKey;size:36"`
	UserID    int64  `gorm:"index"`
	ExpiresAt time.Time
}

// TableName overrides GORM's default naming to use "refresh_tokens".
func (RefreshTokenDTO) TableName() string {
	return "refresh_tokens"
}

func (dto accountDTO) toDomain() (*user.User, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	documentNumber, err := kernel.NewDocumentNumber(dto.DocumentNumber)
	if err != nil {
		return nil, err
	}
	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}
	status, err := user.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, email, documentNumber, phone,
		role, status, dto.RegistrationDate)
}
