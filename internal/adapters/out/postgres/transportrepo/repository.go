package transportrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/transport"
	"ecomove/internal/core/ports"
)

// GormTransportRepository implements TransportRepository using GORM.
type GormTransportRepository struct {
	db *gorm.DB
}

// NewGormTransportRepository creates a new GORM transport repository.
func NewGormTransportRepository(db *gorm.DB) *GormTransportRepository {
	return &GormTransportRepository{db: db}
}

// Create saves a new transport and returns it with its assigned identifier.
func (r *GormTransportRepository) Create(
	ctx context.Context,
	aggregate *transport.Transport,
) (*transport.Transport, error) {
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

// FindByID retrieves a transport by identifier, nil when absent.
func (r *GormTransportRepository) FindByID(ctx context.Context, id kernel.ID) (*transport.Transport, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransportDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindAll retrieves one page of transports ordered by identifier.
func (r *GormTransportRepository) FindAll(
	ctx context.Context,
	request ports.PageRequest,
) (ports.Page[*transport.Transport], error) {
	request = request.Normalize()

	var total int64
	if err := r.db.WithContext(ctx).Model(&TransportDTO{}).Count(&total).Error; err != nil {
		return ports.Page[*transport.Transport]{}, err
	}

	var dtos []TransportDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Limit(request.Limit).
		Offset(request.Offset()).
		Find(&dtos).Error
	if err != nil {
		return ports.Page[*transport.Transport]{}, err
	}

	transports, err := r.toSlice(dtos)
	if err != nil {
		return ports.Page[*transport.Transport]{}, err
	}

	return ports.NewPage(transports, total, request), nil
}

// FindAvailable retrieves AVAILABLE transports, optionally scoped to one
// station. Battery-level rentability is the domain's call, not the query's.
func (r *GormTransportRepository) FindAvailable(
	ctx context.Context,
	stationID *kernel.ID,
) ([]*transport.Transport, error) {
	query := r.db.WithContext(ctx).Where("status = ?", transport.StatusAvailable.String())
	if stationID != nil {
		if err := stationID.Validate(); err != nil {
			return nil, err
		}
		query = query.Where("current_station_id = ?", stationID.Int64())
	}

	var dtos []TransportDTO
	if err := query.Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toSlice(dtos)
}

// FindByStation retrieves every transport docked at a station.
func (r *GormTransportRepository) FindByStation(
	ctx context.Context,
	stationID kernel.ID,
) ([]*transport.Transport, error) {
	if err := stationID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransportDTO
	err := r.db.WithContext(ctx).
		Where("current_station_id = ?", stationID.Int64()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toSlice(dtos)
}

// UpdateStatus changes a transport's status without loading the aggregate.
func (r *GormTransportRepository) UpdateStatus(ctx context.Context, id kernel.ID, status transport.Status) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&TransportDTO{}).
		Where("id = ?", id.Int64()).
		Update("status", status.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Update saves an existing transport. The station reference is written
// explicitly so leaving a station persists as NULL.
func (r *GormTransportRepository) Update(ctx context.Context, aggregate *transport.Transport) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TransportDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// FindNearby retrieves AVAILABLE transports docked at stations within
// radiusKm of center, closest stations first. A non-positive limit means no
// limit.
func (r *GormTransportRepository) FindNearby(
	ctx context.Context,
	center kernel.Coordinate,
	radiusKm float64,
	limit int,
) ([]*transport.Transport, error) {
	if err := center.Validate(); err != nil {
		return nil, err
	}

	query := `
		SELECT *
		FROM (
			SELECT t.*,
				6371 * acos(least(1.0,
					cos(radians(?)) * cos(radians(s.latitude)) *
					cos(radians(s.longitude) - radians(?)) +
					sin(radians(?)) * sin(radians(s.latitude)))) AS distance_km
			FROM transports t
			JOIN stations s ON s.id = t.current_station_id
			WHERE t.status = ?
		) ranked
		WHERE distance_km <= ?
		ORDER BY distance_km, id
	`
	args := []any{
		center.Latitude(), center.Longitude(), center.Latitude(),
		transport.StatusAvailable.String(), radiusKm,
	}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var dtos []TransportDTO
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toSlice(dtos)
}

func (r *GormTransportRepository) toSlice(dtos []TransportDTO) ([]*transport.Transport, error) {
	transports := make([]*transport.Transport, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		transports = append(transports, aggregate)
	}
	return transports, nil
}
