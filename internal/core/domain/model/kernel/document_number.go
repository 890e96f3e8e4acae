package kernel

import (
	"fmt"

	"ecomove/internal/pkg/errs"
	"ecomove/internal/pkg/guard"
)

const (
	minDocumentLength = 8
	maxDocumentLength = 11
)

// ErrDocumentNumberIsNotConstructed is returned when attempting to use an
// improperly initialized DocumentNumber.
var ErrDocumentNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"document number must be created via NewDocumentNumber constructor")

// DocumentNumber is a normalized Colombian identity document number
// (cédula de ciudadanía). Construction strips every non-digit character and
// requires between 8 and 11 digits.
type DocumentNumber struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewDocumentNumber creates a DocumentNumber from raw user input such as
// "12.345.678".
func NewDocumentNumber(raw string) (DocumentNumber, error) {
	document := DocumentNumber{
		guard: guard.NewConstructorGuard(),
	}

	if err := document.setValue(raw); err != nil {
		return DocumentNumber{}, err
	}

	return document, nil
}

// Validate checks the DocumentNumber was created through the constructor.
func (d DocumentNumber) Validate() error {
	return d.guard.Validate(ErrDocumentNumberIsNotConstructed)
}

// Value returns the normalized digit string.
func (d DocumentNumber) Value() string {
	return d.value
}

// Formatted returns the number grouped with dots for display,
// e.g. "12.345.678".
func (d DocumentNumber) Formatted() string {
	if len(d.value) != minDocumentLength {
		return d.value
	}
	return fmt.Sprintf("%s.%s.%s", d.value[:2], d.value[2:5], d.value[5:])
}

// IsEqual compares two document numbers by normalized value.
func (d DocumentNumber) IsEqual(other DocumentNumber) bool {
	return d.value == other.value
}

// String implements fmt.Stringer.
func (d DocumentNumber) String() string {
	return d.value
}

func (d *DocumentNumber) setValue(raw string) error {
	normalized := digitsOnly(raw)
	if normalized == "" {
		return errs.NewValueIsRequiredError("documentNumber")
	}
	if len(normalized) < minDocumentLength || len(normalized) > maxDocumentLength {
		return errs.NewValueIsOutOfRangeError("documentNumber length",
			len(normalized), minDocumentLength, maxDocumentLength)
	}

	d.value = normalized
	return nil
}
