package commands

import (
	"context"
	"fmt"
	"time"

	"ecomove/internal/core/domain/model/loan"
	"ecomove/internal/pkg/errs"
)

// Business-rule codes reported by the rental pre-checks. The repository
// re-checks the racy ones (active loan, availability) inside the
// transaction; these checks exist to fail fast with a precise reason.
const (
	RuleUserCannotRent        = "USER_CANNOT_RENT"
	RuleTransportNotAvailable = "TRANSPORT_NOT_AVAILABLE"
	RuleStationNotActive      = "STATION_NOT_ACTIVE"
	RuleStationCannotProvide  = "STATION_CANNOT_PROVIDE"
	RuleTransportNotAtStation = "TRANSPORT_NOT_AT_STATION"
	RuleTransportBatteryLow   = "TRANSPORT_BATTERY_LOW"
)

// CreateLoanCommandHandler starts rentals. It loads the renter, the
// transport and the origin station, walks the business rules in a fixed
// order failing fast on the first violation, and only then delegates the
// transactional write to the loan repository.
type CreateLoanCommandHandler struct {
	uowFactory LoanUoWFactory
}

// NewCreateLoanCommandHandler creates a handler for rental creation.
// Requires a LoanUoWFactory for transactional persistence.
func NewCreateLoanCommandHandler(uowFactory LoanUoWFactory) CreateLoanCommandHandler {
	return CreateLoanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rental creation command. No side effects happen
// before every rule passes; the created loan starts ACTIVE with a zero cost.
func (h *CreateLoanCommandHandler) Handle(ctx context.Context, cmd CreateLoanCommand) (*loan.Loan, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	renter, err := uow.UserRepository().FindByID(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}
	if renter == nil {
		return nil, errs.NewObjectNotFoundError("user", cmd.UserID())
	}

	vehicle, err := uow.TransportRepository().FindByID(ctx, cmd.TransportID())
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, errs.NewObjectNotFoundError("transport", cmd.TransportID())
	}

	origin, err := uow.StationRepository().FindByID(ctx, cmd.OriginStationID())
	if err != nil {
		return nil, err
	}
	if origin == nil {
		return nil, errs.NewObjectNotFoundError("station", cmd.OriginStationID())
	}

	if !renter.CanRentTransport() {
		return nil, errs.NewBusinessRuleViolationError(RuleUserCannotRent,
			fmt.Sprintf("user %s is not eligible to rent", renter.ID()))
	}
	if !vehicle.IsAvailable() {
		return nil, errs.NewBusinessRuleViolationError(RuleTransportNotAvailable,
			fmt.Sprintf("transport %s is not available", vehicle.ID()))
	}
	if !origin.IsActive() {
		return nil, errs.NewBusinessRuleViolationError(RuleStationNotActive,
			fmt.Sprintf("station %s is not active", origin.ID()))
	}
	if !origin.CanProvideTransport() {
		return nil, errs.NewBusinessRuleViolationError(RuleStationCannotProvide,
			fmt.Sprintf("station %s has no transports to provide", origin.ID()))
	}
	if vehicle.CurrentStationID() == nil || !vehicle.CurrentStationID().IsEqual(origin.ID()) {
		return nil, errs.NewBusinessRuleViolationError(RuleTransportNotAtStation,
			fmt.Sprintf("transport %s is not at station %s", vehicle.ID(), origin.ID()))
	}
	if !vehicle.CanBeRented() {
		return nil, errs.NewBusinessRuleViolationError(RuleTransportBatteryLow,
			fmt.Sprintf("transport %s battery is too low", vehicle.ID()))
	}

	rental, err := loan.NewLoan(
		renter.ID(), vehicle.ID(), origin.ID(),
		cmd.PaymentMethod(), time.Now().UTC(), cmd.ExpectedEndDate(),
	)
	if err != nil {
		return nil, err
	}

	created, err := uow.LoanRepository().Create(ctx, rental)
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
