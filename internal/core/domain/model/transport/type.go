package transport

import (
	"fmt"
	"strings"

	"ecomove/internal/pkg/errs"
)

// Type is the variant discriminator of the transport tagged union.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// TypeBicycle is a mechanical bicycle.
	TypeBicycle

	// TypeElectricScooter is a battery-powered scooter.
	TypeElectricScooter
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeBicycle:         "BICYCLE",
		TypeElectricScooter: "ELECTRIC_SCOOTER",
	}
}

// TypeFromString parses a stored type representation.
func TypeFromString(value string) (Type, error) {
	for transportType, str := range getTypeStrings() {
		if str == value {
			return transportType, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("transportType",
		fmt.Errorf("%q is not a valid transport type", value))
}

// Validate checks the Type value is one of the defined types.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transportType",
			fmt.Errorf("%d is not a valid transport type", t))
	}
	return nil
}

// String implements fmt.Stringer.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// BicycleSpec is the variant payload of a mechanical bicycle.
type BicycleSpec struct {
	GearCount int
	BrakeType string
}

// Validate checks the bicycle payload invariants.
func (s BicycleSpec) Validate() error {
	if s.GearCount < 1 {
		return errs.NewValueIsInvalidErrorWithCause("gearCount",
			fmt.Errorf("%d is not greater than 0", s.GearCount))
	}
	if strings.TrimSpace(s.BrakeType) == "" {
		return errs.NewValueIsRequiredError("brakeType")
	}
	return nil
}

// ElectricScooterSpec is the variant payload of an electric scooter.
type ElectricScooterSpec struct {
	MaxSpeedKmh float64
	RangeKm     float64
}

// Validate checks the scooter payload invariants.
func (s ElectricScooterSpec) Validate() error {
	if s.MaxSpeedKmh <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxSpeedKmh",
			fmt.Errorf("%g is not greater than 0", s.MaxSpeedKmh))
	}
	if s.RangeKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("rangeKm",
			fmt.Errorf("%g is not greater than 0", s.RangeKm))
	}
	return nil
}

// capabilities is the per-variant behavior set: the legal status transition
// table of the variant.
type capabilities struct {
	transitions map[Status][]Status
}

func (c capabilities) canTransition(from, to Status) bool {
	for _, allowed := range c.transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// capabilitiesFor returns the capability set of a variant. Both variants
// share the same table today.
func capabilitiesFor(transportType Type) capabilities {
	switch transportType {
	case TypeBicycle, TypeElectricScooter:
		return capabilities{
			transitions: map[Status][]Status{
				StatusAvailable:   {StatusInUse, StatusMaintenance},
				StatusInUse:       {StatusAvailable, StatusMaintenance},
				StatusMaintenance: {StatusAvailable},
			},
		}
	default:
		return capabilities{}
	}
}
