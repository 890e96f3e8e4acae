package kernel

import (
	"fmt"
	"strings"

	"ecomove/internal/pkg/errs"
	"ecomove/internal/pkg/guard"
)

const (
	phoneLength            = 10
	phoneWithCountryLength = 12
	colombiaCountryCode    = "57"
	colombianMobilePrefix  = '3'
)

// ErrPhoneIsNotConstructed is returned when attempting to use an improperly
// initialized Phone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError(
	"phone must be created via NewPhone constructor")

// Phone is a normalized Colombian mobile number.
// Construction strips every non-digit character and an optional leading 57
// country code, then requires a 10-digit number starting with 3.
type Phone struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewPhone creates a Phone from raw user input such as "+57 300 123 4567".
func NewPhone(raw string) (Phone, error) {
	phone := Phone{
		guard: guard.NewConstructorGuard(),
	}

	if err := phone.setValue(raw); err != nil {
		return Phone{}, err
	}

	return phone, nil
}

// Validate checks the Phone was created through the constructor.
func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}

// Value returns the normalized 10-digit number.
func (p Phone) Value() string {
	return p.value
}

// International returns the number with the country prefix, e.g. "+57 3001234567".
func (p Phone) International() string {
	return fmt.Sprintf("+%s %s", colombiaCountryCode, p.value)
}

// Formatted returns the number grouped for display, e.g. "300 123 4567".
func (p Phone) Formatted() string {
	if len(p.value) != phoneLength {
		return p.value
	}
	return fmt.Sprintf("%s %s %s", p.value[:3], p.value[3:6], p.value[6:])
}

// IsEqual compares two numbers by normalized value.
func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}

// String implements fmt.Stringer.
func (p Phone) String() string {
	return p.value
}

func (p *Phone) setValue(raw string) error {
	normalized := digitsOnly(raw)
	if normalized == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	if len(normalized) == phoneWithCountryLength && strings.HasPrefix(normalized, colombiaCountryCode) {
		normalized = normalized[len(colombiaCountryCode):]
	}

	if len(normalized) != phoneLength || normalized[0] != colombianMobilePrefix {
		return errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q is not a Colombian mobile number", normalized))
	}

	p.value = normalized
	return nil
}

// digitsOnly strips every non-digit rune from s.
func digitsOnly(s string) string {
	var builder strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
