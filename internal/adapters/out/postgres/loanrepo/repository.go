package loanrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/loan"
	"ecomove/internal/core/domain/model/station"
	"ecomove/internal/core/domain/model/transport"
	"ecomove/internal/core/ports"
	"ecomove/internal/pkg/errs"
)

// GormLoanRepository implements LoanRepository using GORM. The write
// operations touch the transports and stations tables as well, so the
// repository must run inside a unit of work for the bookkeeping to be atomic.
type GormLoanRepository struct {
	db *gorm.DB
}

// NewGormLoanRepository creates a new GORM loan repository.
func NewGormLoanRepository(db *gorm.DB) *GormLoanRepository {
	return &GormLoanRepository{db: db}
}

// runningStatuses are the states in which the renter still holds a
// transport. Both block a second loan and both count as "the" running loan.
func runningStatuses() []string {
	return []string{loan.StatusActive.String(), loan.StatusOverdue.String()}
}

// Create persists a new loan after the authoritative availability checks:
// the user must not hold a running (ACTIVE or OVERDUE) loan, the transport
// row must still be AVAILABLE and the origin station must still hold it. The
// transport flips to IN_USE and the origin station's counter drops inside
// the same transaction.
func (r *GormLoanRepository) Create(ctx context.Context, aggregate *loan.Loan) (*loan.Loan, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	var activeLoans int64
	err := r.db.WithContext(ctx).
		Model(&LoanDTO{}).
		Where("user_id = ? AND status IN ?", aggregate.UserID().Int64(), runningStatuses()).
		Count(&activeLoans).Error
	if err != nil {
		return nil, err
	}
	if activeLoans > 0 {
		return nil, errs.NewConflictError(ports.ConflictUserHasActiveLoan,
			"user already holds an active loan")
	}

	claimed := r.db.WithContext(ctx).
		Table("transports").
		Where("id = ? AND status = ? AND current_station_id = ?",
			aggregate.TransportID().Int64(),
			transport.StatusAvailable.String(),
			aggregate.OriginStationID().Int64()).
		Updates(map[string]any{
			"status":             transport.StatusInUse.String(),
			"current_station_id": nil,
		})
	if claimed.Error != nil {
		return nil, claimed.Error
	}
	if claimed.RowsAffected == 0 {
		return nil, errs.NewConflictError(ports.ConflictTransportNotAvailable,
			"transport is no longer available at the origin station")
	}

	released := r.db.WithContext(ctx).
		Table("stations").
		Where("id = ? AND status = ? AND current_transports > 0",
			aggregate.OriginStationID().Int64(), station.StatusActive.String()).
		Update("current_transports", gorm.Expr("current_transports - 1"))
	if released.Error != nil {
		return nil, released.Error
	}
	if released.RowsAffected == 0 {
		return nil, errs.NewConflictError(ports.ConflictTransportNotAvailable,
			"origin station cannot provide a transport")
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// FindByID retrieves a loan by identifier, nil when absent.
func (r *GormLoanRepository) FindByID(ctx context.Context, id kernel.ID) (*loan.Loan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoanDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByUser retrieves one page of a user's loans, newest first.
func (r *GormLoanRepository) FindByUser(
	ctx context.Context,
	userID kernel.ID,
	request ports.PageRequest,
) (ports.Page[*loan.Loan], error) {
	if err := userID.Validate(); err != nil {
		return ports.Page[*loan.Loan]{}, err
	}
	request = request.Normalize()

	var total int64
	err := r.db.WithContext(ctx).
		Model(&LoanDTO{}).
		Where("user_id = ?", userID.Int64()).
		Count(&total).Error
	if err != nil {
		return ports.Page[*loan.Loan]{}, err
	}

	var dtos []LoanDTO
	err = r.db.WithContext(ctx).
		Where("user_id = ?", userID.Int64()).
		Order("start_date DESC, id DESC").
		Limit(request.Limit).
		Offset(request.Offset()).
		Find(&dtos).Error
	if err != nil {
		return ports.Page[*loan.Loan]{}, err
	}

	loans, err := r.toSlice(dtos)
	if err != nil {
		return ports.Page[*loan.Loan]{}, err
	}

	return ports.NewPage(loans, total, request), nil
}

// FindActiveByUser retrieves a user's running loan, ACTIVE or OVERDUE, nil
// when there is none.
func (r *GormLoanRepository) FindActiveByUser(ctx context.Context, userID kernel.ID) (*loan.Loan, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto LoanDTO
	err := r.db.WithContext(ctx).
		First(&dto, "user_id = ? AND status IN ?", userID.Int64(), runningStatuses()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindAll retrieves one page of loans, newest first.
func (r *GormLoanRepository) FindAll(
	ctx context.Context,
	request ports.PageRequest,
) (ports.Page[*loan.Loan], error) {
	request = request.Normalize()

	var total int64
	if err := r.db.WithContext(ctx).Model(&LoanDTO{}).Count(&total).Error; err != nil {
		return ports.Page[*loan.Loan]{}, err
	}

	var dtos []LoanDTO
	err := r.db.WithContext(ctx).
		Order("start_date DESC, id DESC").
		Limit(request.Limit).
		Offset(request.Offset()).
		Find(&dtos).Error
	if err != nil {
		return ports.Page[*loan.Loan]{}, err
	}

	loans, err := r.toSlice(dtos)
	if err != nil {
		return ports.Page[*loan.Loan]{}, err
	}

	return ports.NewPage(loans, total, request), nil
}

// Complete applies a completion payload, returns the transport to the
// destination station and bumps that station's counter. A full destination
// surfaces as a STATION_FULL conflict.
func (r *GormLoanRepository) Complete(ctx context.Context, id kernel.ID, update loan.Update) (*loan.Loan, error) {
	completed, err := r.applyUpdate(ctx, id, update)
	if err != nil {
		return nil, err
	}

	destinationID := completed.DestinationStationID()
	if destinationID == nil {
		return nil, errs.NewValueIsRequiredError("destinationStationId")
	}

	parked := r.db.WithContext(ctx).
		Table("transports").
		Where("id = ?", completed.TransportID().Int64()).
		Updates(map[string]any{
			"status":             transport.StatusAvailable.String(),
			"current_station_id": destinationID.Int64(),
		})
	if parked.Error != nil {
		return nil, parked.Error
	}

	accepted := r.db.WithContext(ctx).
		Table("stations").
		Where("id = ? AND current_transports < max_capacity", destinationID.Int64()).
		Update("current_transports", gorm.Expr("current_transports + 1"))
	if accepted.Error != nil {
		return nil, accepted.Error
	}
	if accepted.RowsAffected == 0 {
		return nil, errs.NewConflictError(ports.ConflictStationFull,
			"destination station has no free docks")
	}

	return completed, nil
}

// Cancel applies a cancellation payload and returns the transport to its
// origin station.
func (r *GormLoanRepository) Cancel(ctx context.Context, id kernel.ID, update loan.Update) (*loan.Loan, error) {
	cancelled, err := r.applyUpdate(ctx, id, update)
	if err != nil {
		return nil, err
	}

	returned := r.db.WithContext(ctx).
		Table("transports").
		Where("id = ?", cancelled.TransportID().Int64()).
		Updates(map[string]any{
			"status":             transport.StatusAvailable.String(),
			"current_station_id": cancelled.OriginStationID().Int64(),
		})
	if returned.Error != nil {
		return nil, returned.Error
	}

	accepted := r.db.WithContext(ctx).
		Table("stations").
		Where("id = ? AND current_transports < max_capacity", cancelled.OriginStationID().Int64()).
		Update("current_transports", gorm.Expr("current_transports + 1"))
	if accepted.Error != nil {
		return nil, accepted.Error
	}
	if accepted.RowsAffected == 0 {
		return nil, errs.NewConflictError(ports.ConflictStationFull,
			"origin station has no free docks")
	}

	return cancelled, nil
}

// Update applies a partial change payload to a loan row with no side effects
// on transports or stations.
func (r *GormLoanRepository) Update(ctx context.Context, id kernel.ID, update loan.Update) (*loan.Loan, error) {
	return r.applyUpdate(ctx, id, update)
}

// FindOverdue retrieves ACTIVE loans whose expected end date has passed.
func (r *GormLoanRepository) FindOverdue(ctx context.Context, now time.Time) ([]*loan.Loan, error) {
	var dtos []LoanDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", loan.StatusActive.String(), now).
		Order("end_date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toSlice(dtos)
}

func (r *GormLoanRepository) applyUpdate(ctx context.Context, id kernel.ID, update loan.Update) (*loan.Loan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	columns := map[string]any{}
	if update.Status != loan.StatusUnknown {
		columns["status"] = update.Status.String()
	}
	if update.DestinationStationID != nil {
		columns["destination_station_id"] = update.DestinationStationID.Int64()
	}
	if update.EndDate != nil {
		columns["end_date"] = *update.EndDate
	}
	if update.TotalCost != nil {
		columns["total_cost"] = update.TotalCost.Amount()
		columns["currency"] = update.TotalCost.Currency()
	}
	if len(columns) == 0 {
		return nil, errs.NewValueIsRequiredError("update")
	}

	result := r.db.WithContext(ctx).
		Model(&LoanDTO{}).
		Where("id = ?", id.Int64()).
		Updates(columns)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var dto LoanDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormLoanRepository) toSlice(dtos []LoanDTO) ([]*loan.Loan, error) {
	loans := make([]*loan.Loan, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		loans = append(loans, aggregate)
	}
	return loans, nil
}
