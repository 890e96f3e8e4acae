package station

import (
	"fmt"

	"ecomove/internal/pkg/errs"
)

// Status represents the operational state of a station.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive is an operating station.
	StatusActive

	// StatusInactive is a station taken out of service.
	StatusInactive

	// StatusMaintenance is a station closed for maintenance work.
	StatusMaintenance
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusActive:      "ACTIVE",
		StatusInactive:    "INACTIVE",
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
		fmt.Errorf("%q is not a valid station status", value))
}

// Validate checks the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid station status", s))
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
