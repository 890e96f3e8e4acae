package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"ecomove/internal/pkg/errs"
	"ecomove/internal/pkg/guard"
)

const maxEmailLength = 255

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrEmailIsNotConstructed is returned when attempting to use an improperly
// initialized Email.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError(
	"email must be created via NewEmail constructor")

// Email is a normalized, format-validated e-mail address.
// Construction trims surrounding whitespace and lowercases the address, so two
// Emails built from differently-cased input compare equal.
type Email struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewEmail creates an Email from raw user input.
func NewEmail(raw string) (Email, error) {
	email := Email{
		guard: guard.NewConstructorGuard(),
	}

	if err := email.setValue(raw); err != nil {
		return Email{}, err
	}

	return email, nil
}

// Validate checks the Email was created through the constructor.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

// Value returns the normalized address.
func (e Email) Value() string {
	return e.value
}

// IsEqual compares two addresses by normalized value.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

// String implements fmt.Stringer.
func (e Email) String() string {
	return e.value
}

func (e *Email) setValue(raw string) error {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if len(normalized) > maxEmailLength {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("address exceeds %d characters", maxEmailLength))
	}
	if !emailPattern.MatchString(normalized) {
		return errs.NewValueIsInvalidError("email")
	}

	e.value = normalized
	return nil
}
