package commands

import (
	"errors"
	"time"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/loan"
	"ecomove/internal/pkg/errs"
	"ecomove/internal/pkg/guard"
)

var ErrCreateLoanCommandIsNotConstructed = errors.New(
	"CreateLoanCommand must be created via NewCreateLoanCommand constructor",
)

// CreateLoanCommand represents a request to start a rental: which user rents
// which transport from which station, billed against which payment method,
// optionally until which expected end date. The end date is what extensions
// move and what the overdue sweep compares against.
//
// Example:
//
//	cmd, err := NewCreateLoanCommand(userID, transportID, stationID, loan.PaymentMethodCreditCard, &until)
//	if err != nil {
//	    return fmt.Errorf("invalid rental request: %w", err)
//	}
//
//	handler := NewCreateLoanCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateLoanCommand struct { //nolint:recvcheck //using for validation
	userID          kernel.ID
	transportID     kernel.ID
	originStationID kernel.ID
	paymentMethod   loan.PaymentMethod
	expectedEndDate *time.Time

	guard guard.ConstructorGuard
}

// NewCreateLoanCommand creates a command to start a rental. Validates that
// all three identifiers are present, the payment method is one of the
// enumerated set, and the expected end date, when given, is not the zero
// instant. Whether it lies after the rental start is checked by the handler,
// which owns the start time.
func NewCreateLoanCommand(
	userID kernel.ID,
	transportID kernel.ID,
	originStationID kernel.ID,
	paymentMethod loan.PaymentMethod,
	expectedEndDate *time.Time,
) (CreateLoanCommand, error) {
	cmd := CreateLoanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setTransportID(transportID),
		cmd.setOriginStationID(originStationID),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setExpectedEndDate(expectedEndDate),
	); err != nil {
		return CreateLoanCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLoanCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoanCommandIsNotConstructed)
}

// UserID returns the renter's identifier.
func (c CreateLoanCommand) UserID() kernel.ID {
	return c.userID
}

// TransportID returns the requested transport's identifier.
func (c CreateLoanCommand) TransportID() kernel.ID {
	return c.transportID
}

// OriginStationID returns the station the rental starts at.
func (c CreateLoanCommand) OriginStationID() kernel.ID {
	return c.originStationID
}

// PaymentMethod returns the payment instrument.
func (c CreateLoanCommand) PaymentMethod() loan.PaymentMethod {
	return c.paymentMethod
}

// ExpectedEndDate returns when the renter plans to return the transport, or
// nil for an open-ended rental.
func (c CreateLoanCommand) ExpectedEndDate() *time.Time {
	return c.expectedEndDate
}

func (c *CreateLoanCommand) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	c.userID = userID
	return nil
}

func (c *CreateLoanCommand) setTransportID(transportID kernel.ID) error {
	if err := transportID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("transportId", err)
	}

	c.transportID = transportID
	return nil
}

func (c *CreateLoanCommand) setOriginStationID(originStationID kernel.ID) error {
	if err := originStationID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("originStationId", err)
	}

	c.originStationID = originStationID
	return nil
}

func (c *CreateLoanCommand) setPaymentMethod(paymentMethod loan.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateLoanCommand) setExpectedEndDate(expectedEndDate *time.Time) error {
	if expectedEndDate == nil {
		c.expectedEndDate = nil
		return nil
	}
	if expectedEndDate.IsZero() {
		return errs.NewValueIsRequiredError("expectedEndDate")
	}

	date := *expectedEndDate
	c.expectedEndDate = &date
	return nil
}
