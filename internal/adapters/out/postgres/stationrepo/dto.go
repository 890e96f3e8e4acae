// Package stationrepo persists stations with GORM.
package stationrepo

import (
	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/station"
)

// StationDTO is the database row for a station.
type StationDTO struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	Name              string `gorm:"size:120"`
	Address           string `gorm:"size:200"`
	Latitude          float64
	Longitude         float64
	MaxCapacity       int
	CurrentTransports int
	Status            string `gorm:"size:16;index"`
}

// TableName overrides GORM's default naming to use "stations".
func (StationDTO) TableName() string {
	return "stations"
}

func fromDomain(aggregate *station.Station) StationDTO {
	return StationDTO{
		ID:                aggregate.ID().Int64(),
		Name:              aggregate.Name(),
		Address:           aggregate.Address(),
		Latitude:          aggregate.Coordinate().Latitude(),
		Longitude:         aggregate.Coordinate().Longitude(),
		MaxCapacity:       aggregate.MaxCapacity(),
		CurrentTransports: aggregate.CurrentTransports(),
		Status:            aggregate.Status().String(),
	}
}

func toDomain(dto StationDTO) (*station.Station, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	coordinate, err := kernel.NewCoordinate(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	status, err := station.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return station.RestoreStation(id, dto.Name, dto.Address, coordinate,
		dto.MaxCapacity, dto.CurrentTransports, status)
}
