// Package userrepo persists user accounts with GORM, mapping between the
// user aggregate and its relational representation.
package userrepo

import (
	"time"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/user"
)

// UserDTO is the database row for a user account. The password hash lives in
// the same table but is owned by the auth adapter and never crosses into the
// domain aggregate.
type UserDTO struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Name             string `gorm:"size:120"`
	Email            string `gorm:"size:254;uniqueIndex"`
	DocumentNumber   string `gorm:"size:20;uniqueIndex"`
	Phone            string `gorm:"size:20;uniqueIndex"`
	Role             string `gorm:"size:16"`
	Status           string `gorm:"size:16;index"`
	RegistrationDate time.Time
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:               aggregate.ID().Int64(),
		Name:             aggregate.Name(),
		Email:            aggregate.Email().Value(),
		DocumentNumber:   aggregate.DocumentNumber().Value(),
		Phone:            aggregate.Phone().Value(),
		Role:             aggregate.Role().String(),
		Status:           aggregate.Status().String(),
		RegistrationDate: aggregate.RegistrationDate(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
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
