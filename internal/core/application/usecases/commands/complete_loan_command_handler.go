package commands

import (
	"context"
	"fmt"

	"ecomove/internal/core/domain/model/loan"
	"ecomove/internal/pkg/errs"
)

// RuleStationCannotAccept is reported when the destination station has no
// free dock slot or is not active.
const RuleStationCannotAccept = "STATION_CANNOT_ACCEPT"

// CompleteLoanCommandHandler ends rentals: it bills the elapsed time at the
// transport's hourly rate and delegates the transactional write (loan
// terminal state, transport release, station docking) to the loan
// repository.
type CompleteLoanCommandHandler struct {
	uowFactory LoanUoWFactory
}

// NewCompleteLoanCommandHandler creates a handler for rental completion.
func NewCompleteLoanCommandHandler(uowFactory LoanUoWFactory) CompleteLoanCommandHandler {
	return CompleteLoanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rental completion command and returns the completed
// loan with its frozen cost.
func (h *CompleteLoanCommandHandler) Handle(ctx context.Context, cmd CompleteLoanCommand) (*loan.Loan, error) {
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

	rental, err := uow.LoanRepository().FindByID(ctx, cmd.LoanID())
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, errs.NewObjectNotFoundError("loan", cmd.LoanID())
	}

	vehicle, err := uow.TransportRepository().FindByID(ctx, rental.TransportID())
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, errs.NewObjectNotFoundError("transport", rental.TransportID())
	}

	destination, err := uow.StationRepository().FindByID(ctx, cmd.DestinationStationID())
	if err != nil {
		return nil, err
	}
	if destination == nil {
		return nil, errs.NewObjectNotFoundError("station", cmd.DestinationStationID())
	}

	if !destination.CanAcceptTransport() {
		return nil, errs.NewBusinessRuleViolationError(RuleStationCannotAccept,
			fmt.Sprintf("station %s cannot accept a transport", destination.ID()))
	}

	update, err := rental.Complete(destination.ID(), cmd.EndDate(), vehicle.HourlyRate())
	if err != nil {
		return nil, err
	}

	completed, err := uow.LoanRepository().Complete(ctx, rental.ID(), update)
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return completed, nil
}
