package commands

import (
	"context"

	"ecomove/internal/core/domain/model/loan"
	"ecomove/internal/pkg/errs"
)

// ExtendLoanCommandHandler moves the expected end date of a running rental.
type ExtendLoanCommandHandler struct {
	uowFactory LoanUoWFactory
}

// NewExtendLoanCommandHandler creates a handler for rental extension.
func NewExtendLoanCommandHandler(uowFactory LoanUoWFactory) ExtendLoanCommandHandler {
	return ExtendLoanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rental extension command.
func (h *ExtendLoanCommandHandler) Handle(ctx context.Context, cmd ExtendLoanCommand) (*loan.Loan, error) {
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

	update, err := rental.Extend(cmd.NewEndDate())
	if err != nil {
		return nil, err
	}

	extended, err := uow.LoanRepository().Update(ctx, rental.ID(), update)
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return extended, nil
}
