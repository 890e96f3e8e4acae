package user

import (
	"fmt"

	"ecomove/internal/pkg/errs"
)

// Role distinguishes regular riders from administrators.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleUser is a regular rider who can rent transports.
	RoleUser

	// RoleAdmin is an administrator of the service.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUser:  "USER",
		RoleAdmin: "ADMIN",
	}
}

// RoleFromString parses a stored role representation.
func RoleFromString(value string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == value {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", value))
}

// Validate checks the Role value is one of the defined roles.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Status represents the account state of a user. Only ACTIVE accounts may
// rent transports or administrate; INACTIVE and SUSPENDED accounts keep
// their data but lose every capability.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive is a fully enabled account.
	StatusActive

	// StatusInactive is a deactivated account.
	StatusInactive

	// StatusSuspended is an account blocked by the service.
	StatusSuspended
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusActive:    "ACTIVE",
		StatusInactive:  "INACTIVE",
		StatusSuspended: "SUSPENDED",
	}
}

// StatusFromString parses a stored status representation.
func StatusFromString(value string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid user status", value))
}

// Validate checks the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid user status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
