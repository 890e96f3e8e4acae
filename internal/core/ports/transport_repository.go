package ports

import (
	"context"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/transport"
)

// TransportRepository defines the persistence contract for transport
// aggregates.
type TransportRepository interface {
	// Create persists a new transport and returns the stored aggregate with
	// its assigned identifier.
	Create(ctx context.Context, aggregate *transport.Transport) (*transport.Transport, error)

	// FindByID retrieves a transport by identifier. Returns (nil, nil) when
	// no transport matches.
	FindByID(ctx context.Context, id kernel.ID) (*transport.Transport, error)

	// FindAll retrieves one page of transports.
	FindAll(ctx context.Context, request PageRequest) (Page[*transport.Transport], error)

	// FindAvailable retrieves transports in AVAILABLE status, optionally
	// restricted to one station.
	FindAvailable(ctx context.Context, stationID *kernel.ID) ([]*transport.Transport, error)

	// FindByStation retrieves every transport docked at the given station.
	FindByStation(ctx context.Context, stationID kernel.ID) ([]*transport.Transport, error)

	// UpdateStatus persists a status change for the given transport.
	UpdateStatus(ctx context.Context, id kernel.ID, status transport.Status) error

	// Update persists changes to an existing transport.
	Update(ctx context.Context, aggregate *transport.Transport) error

	// FindNearby retrieves transports docked at stations within radiusKm of
	// center, closest stations first. A non-positive limit means no limit.
	FindNearby(ctx context.Context, center kernel.Coordinate, radiusKm float64, limit int) ([]*transport.Transport, error)
}
