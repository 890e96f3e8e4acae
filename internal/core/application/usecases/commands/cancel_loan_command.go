package commands

import (
	"errors"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/pkg/errs"
	"ecomove/internal/pkg/guard"
)

var ErrCancelLoanCommandIsNotConstructed = errors.New(
	"CancelLoanCommand must be created via NewCancelLoanCommand constructor",
)

// CancelLoanCommand represents a request to abort a running rental.
type CancelLoanCommand struct { //nolint:recvcheck //using for validation
	loanID kernel.ID

	guard guard.ConstructorGuard
}

// NewCancelLoanCommand creates a command to abort a rental.
func NewCancelLoanCommand(loanID kernel.ID) (CancelLoanCommand, error) {
	cmd := CancelLoanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setLoanID(loanID); err != nil {
		return CancelLoanCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelLoanCommand) Validate() error {
	return c.guard.Validate(ErrCancelLoanCommandIsNotConstructed)
}

// LoanID returns the rental's identifier.
func (c CancelLoanCommand) LoanID() kernel.ID {
	return c.loanID
}

func (c *CancelLoanCommand) setLoanID(loanID kernel.ID) error {
	if err := loanID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loanId", err)
	}

	c.loanID = loanID
	return nil
}
