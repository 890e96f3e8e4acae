package commands

import (
	"errors"
	"time"

	"ecomove/internal/pkg/errs"
	"ecomove/internal/pkg/guard"
)

// MarkOverdueLoansCommand triggers the overdue sweep: every active rental
// whose scheduled end has passed is flagged OVERDUE. A parameterless batch
// command meant to be fired by the scheduler.
type MarkOverdueLoansCommand struct {
	guard guard.ConstructorGuard

	now time.Time
}

var ErrMarkOverdueLoansCommandIsNotConstructed = errors.New(
	"MarkOverdueLoansCommand must be created via NewMarkOverdueLoansCommand constructor",
)

// NewMarkOverdueLoansCommand creates a sweep command anchored at the given
// instant.
func NewMarkOverdueLoansCommand(now time.Time) (MarkOverdueLoansCommand, error) {
	cmd := MarkOverdueLoansCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNow(now); err != nil {
		return MarkOverdueLoansCommand{}, err
	}

	return cmd, nil
}

func (c *MarkOverdueLoansCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}
	c.now = now
	return nil
}

// Now returns the instant the sweep compares end dates against.
func (c *MarkOverdueLoansCommand) Now() time.Time {
	return c.now
}

// Validate ensures the command was created through the constructor.
func (c *MarkOverdueLoansCommand) Validate() error {
	return c.guard.Validate(ErrMarkOverdueLoansCommandIsNotConstructed)
}
