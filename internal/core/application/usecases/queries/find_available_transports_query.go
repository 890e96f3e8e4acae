package queries

import (
	"errors"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/station"
	"ecomove/internal/core/domain/model/transport"
	"ecomove/internal/pkg/errs"
	"ecomove/internal/pkg/guard"
)

// DefaultSearchRadiusKm is applied when a proximity search does not name a
// radius.
const DefaultSearchRadiusKm = 5.0

var ErrFindAvailableTransportsQueryIsNotConstructed = errors.New(
	"FindAvailableTransportsQuery must be created via NewFindAvailableTransportsQuery constructor",
)

// FindAvailableTransportsQuery searches rentable transports either at a
// station or around a rider's location. The two intents are mutually
// exclusive; when both are given the station wins.
//
// Example:
//
//	center, _ := kernel.NewCoordinate(4.6097, -74.0817)
//	query, err := NewFindAvailableTransportsQuery(nil, &center, transport.TypeBicycle, nil, nil)
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, query)
//	fmt.Printf("found %d of %d\n", len(result.Transports), result.TotalFound)
type FindAvailableTransportsQuery struct { //nolint:recvcheck //using for validation
	stationID     *kernel.ID
	userLocation  *kernel.Coordinate
	transportType transport.Type
	radiusKm      float64
	maxResults    int

	guard guard.ConstructorGuard
}

// NewFindAvailableTransportsQuery creates a transport search. All parameters
// are optional: a nil stationID and userLocation means "all available",
// TypeUnknown means no type filter, nil radiusKm falls back to
// DefaultSearchRadiusKm and nil maxResults means no truncation.
func NewFindAvailableTransportsQuery(
	stationID *kernel.ID,
	userLocation *kernel.Coordinate,
	transportType transport.Type,
	radiusKm *float64,
	maxResults *int,
) (FindAvailableTransportsQuery, error) {
	query := FindAvailableTransportsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setStationID(stationID),
		query.setUserLocation(userLocation),
		query.setTransportType(transportType),
		query.setRadiusKm(radiusKm),
		query.setMaxResults(maxResults),
	); err != nil {
		return FindAvailableTransportsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q FindAvailableTransportsQuery) Validate() error {
	return q.guard.Validate(ErrFindAvailableTransportsQueryIsNotConstructed)
}

// StationID returns the station filter, nil when searching by proximity.
func (q FindAvailableTransportsQuery) StationID() *kernel.ID {
	return q.stationID
}

// UserLocation returns the rider's location, nil when searching by station.
func (q FindAvailableTransportsQuery) UserLocation() *kernel.Coordinate {
	return q.userLocation
}

// TransportType returns the type filter, TypeUnknown when absent.
func (q FindAvailableTransportsQuery) TransportType() transport.Type {
	return q.transportType
}

// RadiusKm returns the search radius for proximity searches.
func (q FindAvailableTransportsQuery) RadiusKm() float64 {
	return q.radiusKm
}

// MaxResults returns the truncation limit, 0 when absent.
func (q FindAvailableTransportsQuery) MaxResults() int {
	return q.maxResults
}

func (q *FindAvailableTransportsQuery) setStationID(stationID *kernel.ID) error {
	if stationID == nil {
		return nil
	}
	if err := stationID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("stationId", err)
	}

	q.stationID = stationID
	return nil
}

func (q *FindAvailableTransportsQuery) setUserLocation(userLocation *kernel.Coordinate) error {
	if userLocation == nil {
		return nil
	}
	if err := userLocation.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("userLocation", err)
	}

	q.userLocation = userLocation
	return nil
}

func (q *FindAvailableTransportsQuery) setTransportType(transportType transport.Type) error {
	if transportType == transport.TypeUnknown {
		return nil
	}
	if err := transportType.Validate(); err != nil {
		return err
	}

	q.transportType = transportType
	return nil
}

func (q *FindAvailableTransportsQuery) setRadiusKm(radiusKm *float64) error {
	if radiusKm == nil {
		q.radiusKm = DefaultSearchRadiusKm
		return nil
	}
	if *radiusKm <= 0 {
		return errs.NewValueIsOutOfRangeError("radiusKm", *radiusKm, 0, nil)
	}

	q.radiusKm = *radiusKm
	return nil
}

func (q *FindAvailableTransportsQuery) setMaxResults(maxResults *int) error {
	if maxResults == nil {
		return nil
	}
	if *maxResults <= 0 {
		return errs.NewValueIsOutOfRangeError("maxResults", *maxResults, 1, nil)
	}

	q.maxResults = *maxResults
	return nil
}

// AvailableTransport is a search hit enriched with its current station and,
// for proximity searches, the distance from the rider. Both enrichments are
// best-effort: a failed station lookup leaves them nil.
type AvailableTransport struct {
	Transport  *transport.Transport
	Station    *station.Station
	DistanceKm *float64
}

// FindAvailableTransportsResult carries the (possibly truncated) hits plus
// the match count before truncation and the search geometry.
type FindAvailableTransportsResult struct {
	Transports   []AvailableTransport
	TotalFound   int
	SearchCenter *kernel.Coordinate
	SearchRadius float64
}
