package loan

import (
	"fmt"

	"ecomove/internal/pkg/errs"
)

// Status represents the lifecycle state of a loan.
//
// State transitions:
//
//	ACTIVE ──> COMPLETED
//	   │
//	   ├──> CANCELLED
//	   │
//	   └──> OVERDUE (derived by the overdue sweep, not by a renter action)
//
//	OVERDUE ──> COMPLETED | CANCELLED | ACTIVE (via extension)
//
// COMPLETED and CANCELLED are terminal. OVERDUE is not: the renter still
// holds the transport and exits by completing, cancelling or extending.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive is a running rental.
	StatusActive

	// StatusCompleted is a finished rental with a frozen cost.
	StatusCompleted

	// StatusCancelled is a rental aborted before completion.
	StatusCancelled

	// StatusOverdue is an active rental whose end date has passed.
	StatusOverdue
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusActive:    "ACTIVE",
		StatusCompleted: "COMPLETED",
		StatusCancelled: "CANCELLED",
		StatusOverdue:   "OVERDUE",
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
		fmt.Errorf("%q is not a valid loan status", value))
}

// Validate checks the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid loan status", s))
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

// PaymentMethod is the payment instrument a rental is billed against.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodCreditCard bills a registered credit card.
	PaymentMethodCreditCard

	// PaymentMethodCash settles in cash at the destination station.
	PaymentMethodCash

	// PaymentMethodDigitalWallet bills the in-app wallet balance.
	PaymentMethodDigitalWallet
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodCreditCard:    "credit_card",
		PaymentMethodCash:          "cash",
		PaymentMethodDigitalWallet: "digital_wallet",
	}
}

// PaymentMethodFromString parses a stored payment method representation.
func PaymentMethodFromString(value string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == value {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", value))
}

// Validate checks the PaymentMethod value is one of the defined methods.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String implements fmt.Stringer.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}
