package commands

import (
	"errors"
	"time"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/pkg/errs"
	"ecomove/internal/pkg/guard"
)

var ErrCompleteLoanCommandIsNotConstructed = errors.New(
	"CompleteLoanCommand must be created via NewCompleteLoanCommand constructor",
)

// CompleteLoanCommand represents a request to end a rental at a destination
// station at a given time.
type CompleteLoanCommand struct { //nolint:recvcheck //using for validation
	loanID               kernel.ID
	destinationStationID kernel.ID
	endDate              time.Time

	guard guard.ConstructorGuard
}

// NewCompleteLoanCommand creates a command to end a rental.
func NewCompleteLoanCommand(
	loanID kernel.ID,
	destinationStationID kernel.ID,
	endDate time.Time,
) (CompleteLoanCommand, error) {
	cmd := CompleteLoanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoanID(loanID),
		cmd.setDestinationStationID(destinationStationID),
		cmd.setEndDate(endDate),
	); err != nil {
		return CompleteLoanCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteLoanCommand) Validate() error {
	return c.guard.Validate(ErrCompleteLoanCommandIsNotConstructed)
}

// LoanID returns the rental's identifier.
func (c CompleteLoanCommand) LoanID() kernel.ID {
	return c.loanID
}

// DestinationStationID returns the station the rental ends at.
func (c CompleteLoanCommand) DestinationStationID() kernel.ID {
	return c.destinationStationID
}

// EndDate returns when the rental ends.
func (c CompleteLoanCommand) EndDate() time.Time {
	return c.endDate
}

func (c *CompleteLoanCommand) setLoanID(loanID kernel.ID) error {
	if err := loanID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loanId", err)
	}

	c.loanID = loanID
	return nil
}

func (c *CompleteLoanCommand) setDestinationStationID(destinationStationID kernel.ID) error {
	if err := destinationStationID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destinationStationId", err)
	}

	c.destinationStationID = destinationStationID
	return nil
}

func (c *CompleteLoanCommand) setEndDate(endDate time.Time) error {
	if endDate.IsZero() {
		return errs.NewValueIsRequiredError("endDate")
	}

	c.endDate = endDate
	return nil
}
