package ports

import (
	"context"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/station"
)

// StationRepository defines the persistence contract for station aggregates.
type StationRepository interface {
	// Create persists a new station and returns the stored aggregate with
	// its assigned identifier.
	Create(ctx context.Context, aggregate *station.Station) (*station.Station, error)

	// FindByID retrieves a station by identifier. Returns (nil, nil) when no
	// station matches.
	FindByID(ctx context.Context, id kernel.ID) (*station.Station, error)

	// FindAll retrieves one page of stations.
	FindAll(ctx context.Context, request PageRequest) (Page[*station.Station], error)

	// FindNearby retrieves stations within radiusKm of center, closest
	// first.
	FindNearby(ctx context.Context, center kernel.Coordinate, radiusKm float64) ([]*station.Station, error)

	// FindWithAvailableTransports retrieves ACTIVE stations holding at least
	// one transport.
	FindWithAvailableTransports(ctx context.Context) ([]*station.Station, error)

	// FindWithAvailableSpace retrieves ACTIVE stations with at least one
	// free dock slot.
	FindWithAvailableSpace(ctx context.Context) ([]*station.Station, error)

	// UpdateTransportCount shifts a station's occupancy by delta (positive
	// docks, negative undocks). The stored count never leaves
	// [0, maxCapacity]; a violation surfaces as a conflict error.
	UpdateTransportCount(ctx context.Context, id kernel.ID, delta int) error
}
