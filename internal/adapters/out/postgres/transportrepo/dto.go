// Package transportrepo persists transports with GORM. The two transport
// variants share one table; the variant-specific columns are nullable and
// only one set is populated per row.
package transportrepo

import (
	"github.com/shopspring/decimal"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/transport"
)

// TransportDTO is the database row for a transport.
type TransportDTO struct {
	ID               int64           `gorm:"primaryKey;autoIncrement"`
	Type             string          `gorm:"size:20;index"`
	Model            string          `gorm:"size:120"`
	Status           string          `gorm:"size:16;index"`
	CurrentStationID *int64          `gorm:"index"`
	HourlyRate       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Currency         string          `gorm:"size:3"`
	BatteryLevel     float64

	GearCount   *int
	BrakeType   *string `gorm:"size:30"`
	MaxSpeedKmh *float64
	RangeKm     *float64
}

// TableName overrides GORM's default naming to use "transports".
func (TransportDTO) TableName() string {
	return "transports"
}

func fromDomain(aggregate *transport.Transport) TransportDTO {
	dto := TransportDTO{
		ID:           aggregate.ID().Int64(),
		Type:         aggregate.Type().String(),
		Model:        aggregate.Model(),
		Status:       aggregate.Status().String(),
		HourlyRate:   aggregate.HourlyRate().Amount(),
		Currency:     aggregate.HourlyRate().Currency(),
		BatteryLevel: aggregate.BatteryLevel().Percentage(),
	}

	if stationID := aggregate.CurrentStationID(); stationID != nil {
		raw := stationID.Int64()
		dto.CurrentStationID = &raw
	}

	if spec := aggregate.Bicycle(); spec != nil {
		gearCount := spec.GearCount
		brakeType := spec.BrakeType
		dto.GearCount = &gearCount
		dto.BrakeType = &brakeType
	}
	if spec := aggregate.ElectricScooter(); spec != nil {
		maxSpeed := spec.MaxSpeedKmh
		rangeKm := spec.RangeKm
		dto.MaxSpeedKmh = &maxSpeed
		dto.RangeKm = &rangeKm
	}

	return dto
}

func toDomain(dto TransportDTO) (*transport.Transport, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	transportType, err := transport.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}
	status, err := transport.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var currentStationID *kernel.ID
	if dto.CurrentStationID != nil {
		stationID, idErr := kernel.NewID(*dto.CurrentStationID)
		if idErr != nil {
			return nil, idErr
		}
		currentStationID = &stationID
	}

	hourlyRate, err := kernel.NewMoney(dto.HourlyRate, dto.Currency)
	if err != nil {
		return nil, err
	}
	batteryLevel, err := kernel.NewBatteryLevel(dto.BatteryLevel)
	if err != nil {
		return nil, err
	}

	switch transportType {
	case transport.TypeBicycle:
		spec := transport.BicycleSpec{}
		if dto.GearCount != nil {
			spec.GearCount = *dto.GearCount
		}
		if dto.BrakeType != nil {
			spec.BrakeType = *dto.BrakeType
		}
		return transport.RestoreBicycle(id, dto.Model, status, currentStationID,
			hourlyRate, batteryLevel, spec)
	default:
		spec := transport.ElectricScooterSpec{}
		if dto.MaxSpeedKmh != nil {
			spec.MaxSpeedKmh = *dto.MaxSpeedKmh
		}
		if dto.RangeKm != nil {
			spec.RangeKm = *dto.RangeKm
		}
		return transport.RestoreElectricScooter(id, dto.Model, status, currentStationID,
			hourlyRate, batteryLevel, spec)
	}
}
