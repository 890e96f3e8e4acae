package station

import (
	"errors"
	"fmt"
	"strings"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/pkg/errs"
)

// ErrStationIsNotConstructed is returned when a Station instance was not
// created through the NewStation or RestoreStation factory methods.
var ErrStationIsNotConstructed = errors.New("Station must be created via NewStation or RestoreStation constructors")

// ErrStationIsFull signals that a station cannot accept another transport.
var ErrStationIsFull = errors.New("station is at maximum capacity")

// ErrStationIsEmpty signals that a station has no transport to provide.
var ErrStationIsEmpty = errors.New("station has no transports")

// Station is the aggregate root for a physical dock.
//
// Invariants:
//   - maxCapacity is strictly positive.
//   - currentTransports stays within [0, maxCapacity].
//   - CanProvideTransport holds iff the station is ACTIVE and holds at least
//     one transport.
//   - CanAcceptTransport holds iff the station is ACTIVE and has free space.
type Station struct {
	id                kernel.ID
	name              string
	address           string
	coordinate        kernel.Coordinate
	maxCapacity       int
	currentTransports int
	status            Status

	isConstructed bool
}

// NewStation creates a fresh, not yet persisted station. New stations start
// ACTIVE and empty; the identifier stays zero until the persistence layer
// assigns one.
func NewStation(
	name string,
	address string,
	coordinate kernel.Coordinate,
	maxCapacity int,
) (*Station, error) {
	station := &Station{
		status:        StatusActive,
		isConstructed: true,
	}

	if err := errors.Join(
		station.setName(name),
		station.setAddress(address),
		station.setCoordinate(coordinate),
		station.setMaxCapacity(maxCapacity),
	); err != nil {
		return nil, err
	}

	return station, nil
}

// RestoreStation rehydrates a persisted station. Unlike NewStation it
// requires a valid identifier and accepts the stored status and occupancy.
func RestoreStation(
	id kernel.ID,
	name string,
	address string,
	coordinate kernel.Coordinate,
	maxCapacity int,
	currentTransports int,
	status Status,
) (*Station, error) {
	station := &Station{
		isConstructed: true,
	}

	if err := errors.Join(
		station.setID(id),
		station.setName(name),
		station.setAddress(address),
		station.setCoordinate(coordinate),
		station.setMaxCapacity(maxCapacity),
		station.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := station.setCurrentTransports(currentTransports); err != nil {
		return nil, err
	}

	return station, nil
}

// Validate ensures the Station was created through a factory method.
func (s *Station) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStationIsNotConstructed
	}
	return nil
}

// IsEqual compares two stations by identifier.
func (s *Station) IsEqual(other *Station) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the station's identifier. Zero means not yet persisted.
func (s *Station) ID() kernel.ID {
	return s.id
}

// Name returns the station's display name.
func (s *Station) Name() string {
	return s.name
}

// Address returns the station's street address.
func (s *Station) Address() string {
	return s.address
}

// Coordinate returns the station's geographic position.
func (s *Station) Coordinate() kernel.Coordinate {
	return s.coordinate
}

// MaxCapacity returns the number of dock slots.
func (s *Station) MaxCapacity() int {
	return s.maxCapacity
}

// CurrentTransports returns the number of docked transports.
func (s *Station) CurrentTransports() int {
	return s.currentTransports
}

// Status returns the station's operational status.
func (s *Station) Status() Status {
	return s.status
}

// IsActive reports whether the station is operating.
func (s *Station) IsActive() bool {
	return s.status == StatusActive
}

// CanProvideTransport reports whether a rental can start at this station.
func (s *Station) CanProvideTransport() bool {
	return s.status == StatusActive && s.currentTransports > 0
}

// CanAcceptTransport reports whether a rental can end at this station.
func (s *Station) CanAcceptTransport() bool {
	return s.status == StatusActive && s.currentTransports < s.maxCapacity
}

// AvailableSpaces returns the number of free dock slots.
func (s *Station) AvailableSpaces() int {
	return s.maxCapacity - s.currentTransports
}

// OccupancyRate returns the fraction of occupied slots in [0, 1].
func (s *Station) OccupancyRate() float64 {
	return float64(s.currentTransports) / float64(s.maxCapacity)
}

// DistanceTo returns the great-circle distance in kilometers from the
// station to the given point.
func (s *Station) DistanceTo(point kernel.Coordinate) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return s.coordinate.DistanceTo(point)
}

// ProvideTransport returns a copy of the station with one transport taken
// out. Fails when the station cannot provide a transport.
func (s *Station) ProvideTransport() (*Station, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if !s.CanProvideTransport() {
		return nil, errs.NewBusinessRuleViolationError("STATION_CANNOT_PROVIDE",
			ErrStationIsEmpty.Error())
	}

	updated := *s
	updated.currentTransports--
	return &updated, nil
}

// AcceptTransport returns a copy of the station with one transport docked.
// Fails when the station cannot accept a transport.
func (s *Station) AcceptTransport() (*Station, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if !s.CanAcceptTransport() {
		return nil, errs.NewBusinessRuleViolationError("STATION_CANNOT_ACCEPT",
			ErrStationIsFull.Error())
	}

	updated := *s
	updated.currentTransports++
	return &updated, nil
}

func (s *Station) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Station) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Station) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	s.address = address
	return nil
}

func (s *Station) setCoordinate(coordinate kernel.Coordinate) error {
	if err := coordinate.Validate(); err != nil {
		return err
	}
	s.coordinate = coordinate
	return nil
}

func (s *Station) setMaxCapacity(maxCapacity int) error {
	if maxCapacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxCapacity",
			fmt.Errorf("%d is not greater than 0", maxCapacity))
	}
	s.maxCapacity = maxCapacity
	return nil
}

func (s *Station) setCurrentTransports(currentTransports int) error {
	if currentTransports < 0 || currentTransports > s.maxCapacity {
		return errs.NewValueIsOutOfRangeError("currentTransports",
			currentTransports, 0, s.maxCapacity)
	}
	s.currentTransports = currentTransports
	return nil
}

func (s *Station) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
