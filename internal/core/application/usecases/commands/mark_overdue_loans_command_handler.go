package commands

import (
	"context"
)

// MarkOverdueLoansCommandHandler runs the overdue sweep. All flips happen in
// one transaction so a partially applied sweep never becomes visible.
type MarkOverdueLoansCommandHandler struct {
	uowFactory LoanUoWFactory
}

// NewMarkOverdueLoansCommandHandler creates a handler for the overdue sweep.
func NewMarkOverdueLoansCommandHandler(uowFactory LoanUoWFactory) MarkOverdueLoansCommandHandler {
	return MarkOverdueLoansCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle flags every active rental whose end date lies before the command's
// instant and returns how many were flipped.
func (h *MarkOverdueLoansCommandHandler) Handle(ctx context.Context, cmd MarkOverdueLoansCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loanRepo := uow.LoanRepository()

	overdue, err := loanRepo.FindOverdue(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}

	flipped := 0
	for _, rental := range overdue {
		update, markErr := rental.MarkOverdue(cmd.Now())
		if markErr != nil {
			return 0, markErr
		}

		if _, err = loanRepo.Update(ctx, rental.ID(), update); err != nil {
			return 0, translateRepositoryError(err)
		}
		flipped++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return flipped, nil
}
