package stationrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/station"
	"ecomove/internal/core/ports"
	"ecomove/internal/pkg/errs"
)

// GormStationRepository implements StationRepository using GORM.
type GormStationRepository struct {
	db *gorm.DB
}

// NewGormStationRepository creates a new GORM station repository.
func NewGormStationRepository(db *gorm.DB) *GormStationRepository {
	return &GormStationRepository{db: db}
}

// Create saves a new station and returns it with its assigned identifier.
func (r *GormStationRepository) Create(ctx context.Context, aggregate *station.Station) (*station.Station, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// FindByID retrieves a station by identifier, nil when absent.
func (r *GormStationRepository) FindByID(ctx context.Context, id kernel.ID) (*station.Station, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindAll retrieves one page of stations ordered by identifier.
func (r *GormStationRepository) FindAll(
	ctx context.Context,
	request ports.PageRequest,
) (ports.Page[*station.Station], error) {
	request = request.Normalize()

	var total int64
	if err := r.db.WithContext(ctx).Model(&StationDTO{}).Count(&total).Error; err != nil {
		return ports.Page[*station.Station]{}, err
	}

	var dtos []StationDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Limit(request.Limit).
		Offset(request.Offset()).
		Find(&dtos).Error
	if err != nil {
		return ports.Page[*station.Station]{}, err
	}

	return r.toPage(dtos, total, request)
}

// FindNearby retrieves stations within radiusKm of center, closest first.
// The great-circle distance is computed in SQL so ordering and filtering
// happen before rows leave the database.
func (r *GormStationRepository) FindNearby(
	ctx context.Context,
	center kernel.Coordinate,
	radiusKm float64,
) ([]*station.Station, error) {
	if err := center.Validate(); err != nil {
		return nil, err
	}

	var dtos []StationDTO
	err := r.db.WithContext(ctx).Raw(`
		SELECT *
		FROM (
			SELECT s.*,
				6371 * acos(least(1.0,
					cos(radians(?)) * cos(radians(s.latitude)) *
					cos(radians(s.longitude) - radians(?)) +
					sin(radians(?)) * sin(radians(s.latitude)))) AS distance_km
			FROM stations s
		) ranked
		WHERE distance_km <= ?
		ORDER BY distance_km
	`, center.Latitude(), center.Longitude(), center.Latitude(), radiusKm).Scan(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toSlice(dtos)
}

// FindWithAvailableTransports retrieves active stations holding at least one
// transport.
func (r *GormStationRepository) FindWithAvailableTransports(ctx context.Context) ([]*station.Station, error) {
	var dtos []StationDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND current_transports > 0", station.StatusActive.String()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toSlice(dtos)
}

// FindWithAvailableSpace retrieves active stations with at least one free
// dock.
func (r *GormStationRepository) FindWithAvailableSpace(ctx context.Context) ([]*station.Station, error) {
	var dtos []StationDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND current_transports < max_capacity", station.StatusActive.String()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toSlice(dtos)
}

// UpdateTransportCount atomically shifts a station's transport count by
// delta, refusing changes that would leave the count outside [0, capacity].
func (r *GormStationRepository) UpdateTransportCount(ctx context.Context, id kernel.ID, delta int) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&StationDTO{}).
		Where("id = ? AND current_transports + ? BETWEEN 0 AND max_capacity", id.Int64(), delta).
		Update("current_transports", gorm.Expr("current_transports + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if delta > 0 {
			return errs.NewConflictError(ports.ConflictStationFull, "station has no free docks")
		}
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *GormStationRepository) toSlice(dtos []StationDTO) ([]*station.Station, error) {
	stations := make([]*station.Station, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stations = append(stations, aggregate)
	}
	return stations, nil
}

func (r *GormStationRepository) toPage(
	dtos []StationDTO,
	total int64,
	request ports.PageRequest,
) (ports.Page[*station.Station], error) {
	stations, err := r.toSlice(dtos)
	if err != nil {
		return ports.Page[*station.Station]{}, err
	}
	return ports.NewPage(stations, total, request), nil
}
