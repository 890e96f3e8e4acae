package commands

import (
	"errors"
	"time"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/pkg/errs"
	"ecomove/internal/pkg/guard"
)

var ErrExtendLoanCommandIsNotConstructed = errors.New(
	"ExtendLoanCommand must be created via NewExtendLoanCommand constructor",
)

// ExtendLoanCommand represents a request to move the expected end date of a
// running rental forward.
type ExtendLoanCommand struct { //nolint:recvcheck //using for validation
	loanID     kernel.ID
	newEndDate time.Time

	guard guard.ConstructorGuard
}

// NewExtendLoanCommand creates a command to extend a rental.
func NewExtendLoanCommand(loanID kernel.ID, newEndDate time.Time) (ExtendLoanCommand, error) {
	cmd := ExtendLoanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoanID(loanID),
		cmd.setNewEndDate(newEndDate),
	); err != nil {
		return ExtendLoanCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExtendLoanCommand) Validate() error {
	return c.guard.Validate(ErrExtendLoanCommandIsNotConstructed)
}

// LoanID returns the rental's identifier.
func (c ExtendLoanCommand) LoanID() kernel.ID {
	return c.loanID
}

// NewEndDate returns the requested end date.
func (c ExtendLoanCommand) NewEndDate() time.Time {
	return c.newEndDate
}

func (c *ExtendLoanCommand) setLoanID(loanID kernel.ID) error {
	if err := loanID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loanId", err)
	}

	c.loanID = loanID
	return nil
}

func (c *ExtendLoanCommand) setNewEndDate(newEndDate time.Time) error {
	if newEndDate.IsZero() {
		return errs.NewValueIsRequiredError("newEndDate")
	}

	c.newEndDate = newEndDate
	return nil
}
