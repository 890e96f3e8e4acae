// Package loanrepo persists loans with GORM and enforces the rental
// bookkeeping that must hold transactionally: one active loan per user, the
// transport status flip and the station counter moves.
package loanrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/loan"
)

// LoanDTO is the database row for a loan.
type LoanDTO struct {
	ID                   int64 `gorm:"primaryKey;autoIncrement"`
	UserID               int64 `gorm:"index"`
	TransportID          int64 `gorm:"index"`
	OriginStationID      int64
	DestinationStationID *int64
	StartDate            time.Time
	EndDate              *time.Time
	TotalCost            decimal.Decimal `gorm:"type:numeric(12,2)"`
	Currency             string          `gorm:"size:3"`
	Status               string          `gorm:"size:16;index"`
	PaymentMethod        string          `gorm:"size:20"`
}

// TableName overrides GORM's default naming to use "loans".
func (LoanDTO) TableName() string {
	return "loans"
}

func fromDomain(aggregate *loan.Loan) LoanDTO {
	dto := LoanDTO{
		ID:              aggregate.ID().Int64(),
		UserID:          aggregate.UserID().Int64(),
		TransportID:     aggregate.TransportID().Int64(),
		OriginStationID: aggregate.OriginStationID().Int64(),
		StartDate:       aggregate.StartDate(),
		TotalCost:       aggregate.TotalCost().Amount(),
		Currency:        aggregate.TotalCost().Currency(),
		Status:          aggregate.Status().String(),
		PaymentMethod:   aggregate.PaymentMethod().String(),
	}

	if destinationID := aggregate.DestinationStationID(); destinationID != nil {
		raw := destinationID.Int64()
		dto.DestinationStationID = &raw
	}
	if endDate := aggregate.EndDate(); endDate != nil {
		raw := *endDate
		dto.EndDate = &raw
	}

	return dto
}

func toDomain(dto LoanDTO) (*loan.Loan, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.NewID(dto.UserID)
	if err != nil {
		return nil, err
	}
	transportID, err := kernel.NewID(dto.TransportID)
	if err != nil {
		return nil, err
	}
	originStationID, err := kernel.NewID(dto.OriginStationID)
	if err != nil {
		return nil, err
	}

	var destinationStationID *kernel.ID
	if dto.DestinationStationID != nil {
		destinationID, idErr := kernel.NewID(*dto.DestinationStationID)
		if idErr != nil {
			return nil, idErr
		}
		destinationStationID = &destinationID
	}

	totalCost, err := kernel.NewMoney(dto.TotalCost, dto.Currency)
	if err != nil {
		return nil, err
	}

	status, err := loan.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := loan.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	return loan.RestoreLoan(id, userID, transportID, originStationID, destinationStationID,
		dto.StartDate, dto.EndDate, totalCost, status, paymentMethod)
}
