package transport

import (
	"fmt"

	"ecomove/internal/pkg/errs"
)

// Status represents the rental state of a transport.
//
// State transitions (validated per variant through its capability set):
//
//	AVAILABLE ──> IN_USE ──> AVAILABLE
//	    │            │
//	    v            v
//	MAINTENANCE <────┘
//	    │
//	    └──> AVAILABLE
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable means the transport is docked and rentable.
	StatusAvailable

	// StatusInUse means the transport is currently rented.
	StatusInUse

	// StatusMaintenance means the transport is withdrawn for service work.
	StatusMaintenance
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusAvailable:   "AVAILABLE",
		StatusInUse:       "IN_USE",
		StatusMaintenance: "MAINTENANCE",
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
		fmt.Errorf("%q is not a valid transport status", value))
}

// Validate checks the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid transport status", s))
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
