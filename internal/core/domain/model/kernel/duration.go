package kernel

import (
	"errors"
	"fmt"
	"time"

	"ecomove/internal/pkg/errs"
	"ecomove/internal/pkg/guard"
)

const (
	minutesPerHour  = 60
	minutesPerDay   = 24 * 60
	millisPerMinute = 60_000
)

// ErrDurationIsNotConstructed is returned when attempting to use an improperly
// initialized Duration.
var ErrDurationIsNotConstructed = errs.NewValueIsRequiredError(
	"duration must be created via NewDuration or DurationBetween constructors")

// Duration represents a rental duration in whole, non-negative minutes.
// Arithmetic keeps the invariant: operations that would produce a negative
// duration fail instead of wrapping.
type Duration struct { //nolint:recvcheck //using for validation
	minutes int64
	guard   guard.ConstructorGuard
}

// NewDuration creates a Duration from a minute count.
func NewDuration(minutes int64) (Duration, error) {
	duration := Duration{
		guard: guard.NewConstructorGuard(),
	}

	if err := duration.setMinutes(minutes); err != nil {
		return Duration{}, err
	}

	return duration, nil
}

// NewDurationFromHours creates a Duration spanning whole hours.
func NewDurationFromHours(hours int64) (Duration, error) {
	return NewDuration(hours * minutesPerHour)
}

// NewDurationFromDays creates a Duration spanning whole days.
func NewDurationFromDays(days int64) (Duration, error) {
	return NewDuration(days * minutesPerDay)
}

// DurationBetween measures the elapsed time from start to end in whole minutes
// (fractions of a minute are discarded). When end precedes start the result is
// clamped to zero rather than failing; callers that need to reject inverted
// ranges must check the dates themselves.
func DurationBetween(start, end time.Time) Duration {
	minutes := end.Sub(start).Milliseconds() / millisPerMinute
	if minutes < 0 {
		minutes = 0
	}

	duration, _ := NewDuration(minutes)
	return duration
}

// Validate checks the Duration was created through a constructor.
func (d Duration) Validate() error {
	return d.guard.Validate(ErrDurationIsNotConstructed)
}

// Minutes returns the duration in whole minutes.
func (d Duration) Minutes() int64 {
	return d.minutes
}

// Hours returns the duration in fractional hours.
func (d Duration) Hours() float64 {
	return float64(d.minutes) / minutesPerHour
}

// Days returns the duration in fractional days.
func (d Duration) Days() float64 {
	return float64(d.minutes) / minutesPerDay
}

// Add returns the sum of two durations.
func (d Duration) Add(other Duration) (Duration, error) {
	if err := errors.Join(d.Validate(), other.Validate()); err != nil {
		return Duration{}, err
	}

	return NewDuration(d.minutes + other.minutes)
}

// Subtract returns the difference of two durations. A negative result is a
// validation error.
func (d Duration) Subtract(other Duration) (Duration, error) {
	if err := errors.Join(d.Validate(), other.Validate()); err != nil {
		return Duration{}, err
	}

	result := d.minutes - other.minutes
	if result < 0 {
		return Duration{}, errs.NewValueIsInvalidErrorWithCause("minutes",
			errors.New("subtraction result cannot be negative"))
	}

	return NewDuration(result)
}

// Multiply scales the duration by a non-negative factor.
func (d Duration) Multiply(factor int64) (Duration, error) {
	if err := d.Validate(); err != nil {
		return Duration{}, err
	}
	if factor < 0 {
		return Duration{}, errs.NewValueIsInvalidErrorWithCause("factor",
			errors.New("factor cannot be negative"))
	}

	return NewDuration(d.minutes * factor)
}

// IsGreaterThan reports whether d exceeds other.
func (d Duration) IsGreaterThan(other Duration) bool {
	return d.minutes > other.minutes
}

// IsLessThan reports whether d is below other.
func (d Duration) IsLessThan(other Duration) bool {
	return d.minutes < other.minutes
}

// IsEqual compares two durations by value.
func (d Duration) IsEqual(other Duration) bool {
	return d.minutes == other.minutes
}

// String implements fmt.Stringer, e.g. "1h 5m".
func (d Duration) String() string {
	hours := d.minutes / minutesPerHour
	minutes := d.minutes % minutesPerHour

	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func (d *Duration) setMinutes(minutes int64) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("minutes",
			errors.New("duration cannot be negative"))
	}

	d.minutes = minutes
	return nil
}
