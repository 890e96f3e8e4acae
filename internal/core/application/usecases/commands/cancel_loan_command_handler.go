package commands

import (
	"context"

	"ecomove/internal/core/domain/model/loan"
	"ecomove/internal/pkg/errs"
)

// CancelLoanCommandHandler aborts running rentals. The cost stays zero and
// the transport is released back to its origin station by the repository.
type CancelLoanCommandHandler struct {
	uowFactory LoanUoWFactory
}

// NewCancelLoanCommandHandler creates a handler for rental cancellation.
func NewCancelLoanCommandHandler(uowFactory LoanUoWFactory) CancelLoanCommandHandler {
	return CancelLoanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rental cancellation command.
func (h *CancelLoanCommandHandler) Handle(ctx context.Context, cmd CancelLoanCommand) (*loan.Loan, error) {
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

	update, err := rental.Cancel()
	if err != nil {
		return nil, err
	}

	cancelled, err := uow.LoanRepository().Cancel(ctx, rental.ID(), update)
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cancelled, nil
}
