package kernel

import (
	"fmt"

	"ecomove/internal/pkg/errs"
	"ecomove/internal/pkg/guard"
)

const (
	minBatteryPercentage = 0.0
	maxBatteryPercentage = 100.0

	// Band boundaries, inclusive on the low end of each band.
	batteryCriticalMax = 10.0
	batteryLowMax      = 25.0
	batteryGoodMax     = 75.0
)

// BatteryStatus is the qualitative charge tier derived from a battery
// percentage.
type BatteryStatus int

const (
	// BatteryStatusUnknown represents an invalid or undefined status.
	BatteryStatusUnknown BatteryStatus = iota
	// BatteryStatusCritical covers percentages up to and including 10.
	BatteryStatusCritical
	// BatteryStatusLow covers percentages above 10 up to and including 25.
	BatteryStatusLow
	// BatteryStatusGood covers percentages above 25 up to and including 75.
	BatteryStatusGood
	// BatteryStatusExcellent covers percentages above 75.
	BatteryStatusExcellent
)

// String returns the human-readable name of the status.
func (s BatteryStatus) String() string {
	switch s {
	case BatteryStatusCritical:
		return "critical"
	case BatteryStatusLow:
		return "low"
	case BatteryStatusGood:
		return "good"
	case BatteryStatusExcellent:
		return "excellent"
	default:
		return "unknown"
	}
}

// ErrBatteryLevelIsNotConstructed is returned when attempting to use an
// improperly initialized BatteryLevel.
var ErrBatteryLevelIsNotConstructed = errs.NewValueIsRequiredError(
	"battery level must be created via NewBatteryLevel constructor")

// BatteryLevel represents a vehicle charge percentage in [0, 100].
// The level derives a status tier and the rentability predicate: a transport
// can only be rented with strictly more than 10% charge.
type BatteryLevel struct { //nolint:recvcheck //using for validation
	percentage float64
	guard      guard.ConstructorGuard
}

// NewBatteryLevel creates a BatteryLevel from a percentage in [0, 100].
func NewBatteryLevel(percentage float64) (BatteryLevel, error) {
	level := BatteryLevel{
		guard: guard.NewConstructorGuard(),
	}

	if err := level.setPercentage(percentage); err != nil {
		return BatteryLevel{}, err
	}

	return level, nil
}

// FullBatteryLevel creates a 100% level.
func FullBatteryLevel() BatteryLevel {
	level, _ := NewBatteryLevel(maxBatteryPercentage)
	return level
}

// Validate checks the BatteryLevel was created through a constructor.
func (b BatteryLevel) Validate() error {
	return b.guard.Validate(ErrBatteryLevelIsNotConstructed)
}

// Percentage returns the charge percentage.
func (b BatteryLevel) Percentage() float64 {
	return b.percentage
}

// Status returns the qualitative tier for the current percentage.
func (b BatteryLevel) Status() BatteryStatus {
	switch {
	case b.percentage <= batteryCriticalMax:
		return BatteryStatusCritical
	case b.percentage <= batteryLowMax:
		return BatteryStatusLow
	case b.percentage <= batteryGoodMax:
		return BatteryStatusGood
	default:
		return BatteryStatusExcellent
	}
}

// IsCritical reports whether the charge is at or below 10%.
func (b BatteryLevel) IsCritical() bool {
	return b.Status() == BatteryStatusCritical
}

// IsLow reports whether the charge is in the low band.
func (b BatteryLevel) IsLow() bool {
	return b.Status() == BatteryStatusLow
}

// CanBeRented reports whether the charge allows starting a rental.
// The threshold is strict: exactly 10% is not rentable.
func (b BatteryLevel) CanBeRented() bool {
	return b.percentage > batteryCriticalMax
}

// IsEqual compares two levels by value.
func (b BatteryLevel) IsEqual(other BatteryLevel) bool {
	return b.percentage == other.percentage
}

// String implements fmt.Stringer, e.g. "80% (excellent)".
func (b BatteryLevel) String() string {
	return fmt.Sprintf("%g%% (%s)", b.percentage, b.Status())
}

func (b *BatteryLevel) setPercentage(percentage float64) error {
	if percentage < minBatteryPercentage || percentage > maxBatteryPercentage {
		return errs.NewValueIsOutOfRangeError("percentage", percentage,
			minBatteryPercentage, maxBatteryPercentage)
	}

	b.percentage = percentage
	return nil
}
