package transport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/pkg/errs"
)

const minutesPerBilledHour = 60

// ErrTransportIsNotConstructed is returned when a Transport instance was not
// created through one of the factory methods.
var ErrTransportIsNotConstructed = errors.New(
	"Transport must be created via NewBicycle, NewElectricScooter or a Restore constructor")

// RuleInvalidTransition is the business-rule code reported when a status
// change is not present in the variant's transition table.
const RuleInvalidTransition = "INVALID_TRANSITION"

// Transport is the aggregate root for a rentable vehicle. It is a tagged
// union: transportType selects the variant payload and the capability set
// used to validate status transitions.
//
// Invariants:
//   - Model is non-empty.
//   - Hourly rate and battery level are valid value objects.
//   - Status changes go through UpdateStatus and must appear in the
//     variant's transition table.
//   - IsAvailable holds iff status is AVAILABLE and the battery is rentable
//     (strictly above 10%).
//
// All state changes return a new instance; a Transport is never mutated in
// place.
type Transport struct {
	id               kernel.ID
	transportType    Type
	model            string
	status           Status
	currentStationID *kernel.ID
	hourlyRate       kernel.Money
	batteryLevel     kernel.BatteryLevel

	bicycle *BicycleSpec
	scooter *ElectricScooterSpec

	isConstructed bool
}

// NewBicycle creates a fresh, not yet persisted bicycle docked at the given
// station. New transports start AVAILABLE with a full battery (feeding the
// shared availability rule even though a bicycle has no real battery).
func NewBicycle(
	model string,
	hourlyRate kernel.Money,
	stationID kernel.ID,
	spec BicycleSpec,
) (*Transport, error) {
	return newTransport(TypeBicycle, model, hourlyRate, kernel.FullBatteryLevel(),
		stationID, &spec, nil)
}

// NewElectricScooter creates a fresh, not yet persisted electric scooter
// docked at the given station.
func NewElectricScooter(
	model string,
	hourlyRate kernel.Money,
	batteryLevel kernel.BatteryLevel,
	stationID kernel.ID,
	spec ElectricScooterSpec,
) (*Transport, error) {
	return newTransport(TypeElectricScooter, model, hourlyRate, batteryLevel,
		stationID, nil, &spec)
}

func newTransport(
	transportType Type,
	model string,
	hourlyRate kernel.Money,
	batteryLevel kernel.BatteryLevel,
	stationID kernel.ID,
	bicycle *BicycleSpec,
	scooter *ElectricScooterSpec,
) (*Transport, error) {
	t := &Transport{
		transportType: transportType,
		status:        StatusAvailable,
		bicycle:       bicycle,
		scooter:       scooter,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setModel(model),
		t.setHourlyRate(hourlyRate),
		t.setBatteryLevel(batteryLevel),
		t.setCurrentStation(&stationID),
		t.validateSpec(),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreBicycle rehydrates a persisted bicycle. Requires a valid identifier
// and accepts the stored status and station reference (nil while undocked).
func RestoreBicycle(
	id kernel.ID,
	model string,
	status Status,
	currentStationID *kernel.ID,
	hourlyRate kernel.Money,
	batteryLevel kernel.BatteryLevel,
	spec BicycleSpec,
) (*Transport, error) {
	return restoreTransport(id, TypeBicycle, model, status, currentStationID,
		hourlyRate, batteryLevel, &spec, nil)
}

// RestoreElectricScooter rehydrates a persisted electric scooter.
func RestoreElectricScooter(
	id kernel.ID,
	model string,
	status Status,
	currentStationID *kernel.ID,
	hourlyRate kernel.Money,
	batteryLevel kernel.BatteryLevel,
	spec ElectricScooterSpec,
) (*Transport, error) {
	return restoreTransport(id, TypeElectricScooter, model, status,
		currentStationID, hourlyRate, batteryLevel, nil, &spec)
}

func restoreTransport(
	id kernel.ID,
	transportType Type,
	model string,
	status Status,
	currentStationID *kernel.ID,
	hourlyRate kernel.Money,
	batteryLevel kernel.BatteryLevel,
	bicycle *BicycleSpec,
	scooter *ElectricScooterSpec,
) (*Transport, error) {
	t := &Transport{
		transportType: transportType,
		bicycle:       bicycle,
		scooter:       scooter,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setModel(model),
		t.setStatus(status),
		t.setHourlyRate(hourlyRate),
		t.setBatteryLevel(batteryLevel),
		t.setCurrentStation(currentStationID),
		t.validateSpec(),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the Transport was created through a factory method.
func (t *Transport) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransportIsNotConstructed
	}
	return nil
}

// IsEqual compares two transports by identifier.
func (t *Transport) IsEqual(other *Transport) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the transport's identifier. Zero means not yet persisted.
func (t *Transport) ID() kernel.ID {
	return t.id
}

// Type returns the variant discriminator.
func (t *Transport) Type() Type {
	return t.transportType
}

// Model returns the vehicle model name.
func (t *Transport) Model() string {
	return t.model
}

// Status returns the current rental state.
func (t *Transport) Status() Status {
	return t.status
}

// CurrentStationID returns the station the transport is docked at, or nil
// while it is away from any station.
func (t *Transport) CurrentStationID() *kernel.ID {
	return t.currentStationID
}

// HourlyRate returns the billing rate per started hour.
func (t *Transport) HourlyRate() kernel.Money {
	return t.hourlyRate
}

// BatteryLevel returns the current charge level.
func (t *Transport) BatteryLevel() kernel.BatteryLevel {
	return t.batteryLevel
}

// Bicycle returns the bicycle payload, or nil for other variants.
func (t *Transport) Bicycle() *BicycleSpec {
	return t.bicycle
}

// ElectricScooter returns the scooter payload, or nil for other variants.
func (t *Transport) ElectricScooter() *ElectricScooterSpec {
	return t.scooter
}

// IsAvailable reports whether the transport can be handed to a renter right
// now: it must be AVAILABLE and hold a rentable charge.
func (t *Transport) IsAvailable() bool {
	return t.status == StatusAvailable && t.batteryLevel.CanBeRented()
}

// CanBeRented reports whether the battery charge allows a rental.
func (t *Transport) CanBeRented() bool {
	return t.batteryLevel.CanBeRented()
}

// NeedsMaintenance reports whether the vehicle should be serviced: it is
// either withdrawn already or running on a critical battery. Informational
// only, it does not trigger a transition.
func (t *Transport) NeedsMaintenance() bool {
	return t.status == StatusMaintenance || t.batteryLevel.IsCritical()
}

// NeedsCharging reports whether an electric scooter should be recharged.
// Always false for bicycles.
func (t *Transport) NeedsCharging() bool {
	if t.transportType != TypeElectricScooter {
		return false
	}
	return t.batteryLevel.IsCritical() || t.batteryLevel.IsLow()
}

// UpdateStatus returns a copy of the transport in the new status. This is
// the sole status mutation entry point: the change must be present in the
// variant's transition table or the call fails with an INVALID_TRANSITION
// business-rule violation.
func (t *Transport) UpdateStatus(newStatus Status) (*Transport, error) {
	if err := errors.Join(t.Validate(), newStatus.Validate()); err != nil {
		return nil, err
	}

	if !capabilitiesFor(t.transportType).canTransition(t.status, newStatus) {
		return nil, errs.NewBusinessRuleViolationError(RuleInvalidTransition,
			fmt.Sprintf("cannot transition %s transport from %s to %s",
				t.transportType, t.status, newStatus))
	}

	updated := *t
	updated.status = newStatus
	return &updated, nil
}

// AssignToStation returns a copy of the transport docked at the given
// station.
func (t *Transport) AssignToStation(stationID kernel.ID) (*Transport, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	updated := *t
	if err := updated.setCurrentStation(&stationID); err != nil {
		return nil, err
	}
	return &updated, nil
}

// LeaveStation returns a copy of the transport detached from any station.
func (t *Transport) LeaveStation() (*Transport, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	updated := *t
	updated.currentStationID = nil
	return &updated, nil
}

// WithBatteryLevel returns a copy of the transport at the given charge.
func (t *Transport) WithBatteryLevel(level kernel.BatteryLevel) (*Transport, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	updated := *t
	if err := updated.setBatteryLevel(level); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CalculateCost bills a rental duration at the transport's hourly rate.
// Billing uses ceiling-hour rounding: every started hour is charged in full.
func (t *Transport) CalculateCost(duration kernel.Duration) (kernel.Money, error) {
	if err := errors.Join(t.Validate(), duration.Validate()); err != nil {
		return kernel.Money{}, err
	}

	billedHours := (duration.Minutes() + minutesPerBilledHour - 1) / minutesPerBilledHour
	return t.hourlyRate.Multiply(decimal.NewFromInt(billedHours))
}

// Specifications returns the variant-specific characteristics as a flat map
// for display and serialization.
func (t *Transport) Specifications() map[string]any {
	switch t.transportType {
	case TypeBicycle:
		return map[string]any{
			"gearCount": t.bicycle.GearCount,
			"brakeType": t.bicycle.BrakeType,
		}
	case TypeElectricScooter:
		return map[string]any{
			"maxSpeedKmh": t.scooter.MaxSpeedKmh,
			"rangeKm":     t.scooter.RangeKm,
		}
	default:
		return map[string]any{}
	}
}

func (t *Transport) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transport) setModel(model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	t.model = model
	return nil
}

func (t *Transport) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}

func (t *Transport) setHourlyRate(hourlyRate kernel.Money) error {
	if err := hourlyRate.Validate(); err != nil {
		return err
	}
	t.hourlyRate = hourlyRate
	return nil
}

func (t *Transport) setBatteryLevel(batteryLevel kernel.BatteryLevel) error {
	if err := batteryLevel.Validate(); err != nil {
		return err
	}
	t.batteryLevel = batteryLevel
	return nil
}

func (t *Transport) setCurrentStation(stationID *kernel.ID) error {
	if stationID == nil {
		t.currentStationID = nil
		return nil
	}
	if err := stationID.Validate(); err != nil {
		return err
	}

	id := *stationID
	t.currentStationID = &id
	return nil
}

func (t *Transport) validateSpec() error {
	switch t.transportType {
	case TypeBicycle:
		if t.bicycle == nil {
			return errs.NewValueIsRequiredError("bicycleSpec")
		}
		return t.bicycle.Validate()
	case TypeElectricScooter:
		if t.scooter == nil {
			return errs.NewValueIsRequiredError("electricScooterSpec")
		}
		return t.scooter.Validate()
	default:
		return errs.NewValueIsInvalidError("transportType")
	}
}
