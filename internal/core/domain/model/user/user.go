package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/pkg/errs"
)

const minNameLength = 2

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory methods.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructors")

// User is the aggregate root for a registered account. It owns its validated
// identity fields and derives the rental-eligibility predicates from its role
// and status.
//
// Invariants:
//   - Name has at least 2 characters after trimming.
//   - Email, phone and document number are valid value objects.
//   - Role and status are members of their enumerations.
//   - CanRentTransport holds iff status is ACTIVE.
//   - CanAdministrate holds iff status is ACTIVE and role is ADMIN.
type User struct {
	id               kernel.ID
	name             string
	email            kernel.Email
	documentNumber   kernel.DocumentNumber
	phone            kernel.Phone
	role             Role
	status           Status
	registrationDate time.Time

	isConstructed bool
}

// NewUser creates a fresh, not yet persisted account. New accounts start as
// regular riders with an ACTIVE status and a registration date of now; the
// identifier stays zero until the persistence layer assigns one.
func NewUser(
	name string,
	email kernel.Email,
	documentNumber kernel.DocumentNumber,
	phone kernel.Phone,
) (*User, error) {
	user := &User{
		role:             RoleUser,
		status:           StatusActive,
		registrationDate: time.Now().UTC(),
		isConstructed:    true,
	}

	if err := errors.Join(
		user.setName(name),
		user.setEmail(email),
		user.setDocumentNumber(documentNumber),
		user.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser rehydrates a persisted account. Unlike NewUser it requires a
// valid identifier and accepts the stored role, status and registration date.
func RestoreUser(
	id kernel.ID,
	name string,
	email kernel.Email,
	documentNumber kernel.DocumentNumber,
	phone kernel.Phone,
	role Role,
	status Status,
	registrationDate time.Time,
) (*User, error) {
	user := &User{
		registrationDate: registrationDate,
		isConstructed:    true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setName(name),
		user.setEmail(email),
		user.setDocumentNumber(documentNumber),
		user.setPhone(phone),
		user.setRole(role),
		user.setStatus(status),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate ensures the User was created through a factory method.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by identifier.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's identifier. Zero means not yet persisted.
func (u *User) ID() kernel.ID {
	return u.id
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the normalized e-mail address.
func (u *User) Email() kernel.Email {
	return u.email
}

// DocumentNumber returns the identity document number.
func (u *User) DocumentNumber() kernel.DocumentNumber {
	return u.documentNumber
}

// Phone returns the mobile number.
func (u *User) Phone() kernel.Phone {
	return u.phone
}

// Role returns the account role.
func (u *User) Role() Role {
	return u.role
}

// Status returns the account status.
func (u *User) Status() Status {
	return u.status
}

// RegistrationDate returns when the account was registered.
func (u *User) RegistrationDate() time.Time {
	return u.registrationDate
}

// IsActive reports whether the account is enabled.
func (u *User) IsActive() bool {
	return u.status == StatusActive
}

// CanRentTransport reports whether the account may start a rental.
// Only ACTIVE accounts are eligible.
func (u *User) CanRentTransport() bool {
	return u.status == StatusActive
}

// CanAdministrate reports whether the account may perform administrative
// operations. Requires an ACTIVE account with the ADMIN role.
func (u *User) CanAdministrate() bool {
	return u.status == StatusActive && u.role == RoleAdmin
}

// ProfileUpdate names the profile fields a user may change. Nil fields are
// left untouched.
type ProfileUpdate struct {
	Name  *string
	Phone *kernel.Phone
}

// UpdateProfile returns a copy of the user with the requested profile changes
// applied. The original instance is never mutated.
func (u *User) UpdateProfile(changes ProfileUpdate) (*User, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	updated := *u

	if changes.Name != nil {
		if err := updated.setName(*changes.Name); err != nil {
			return nil, err
		}
	}
	if changes.Phone != nil {
		if err := updated.setPhone(*changes.Phone); err != nil {
			return nil, err
		}
	}

	return &updated, nil
}

func (u *User) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < minNameLength {
		return errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("name must have at least %d characters", minNameLength))
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	u.email = email
	return nil
}

func (u *User) setDocumentNumber(documentNumber kernel.DocumentNumber) error {
	if err := documentNumber.Validate(); err != nil {
		return err
	}
	u.documentNumber = documentNumber
	return nil
}

func (u *User) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	u.phone = phone
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	u.status = status
	return nil
}
