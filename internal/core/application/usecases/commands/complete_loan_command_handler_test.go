package commands_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ecomove/internal/core/application/usecases/commands"
	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/loan"
	"ecomove/internal/core/domain/model/station"
	"ecomove/internal/core/domain/model/transport"
	"ecomove/internal/pkg/errs"
)

func TestCompleteLoanCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	w := newCreateLoanWorld()

	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	end := start.Add(65 * time.Minute)
	rental := fixtureActiveLoan(t, start)

	mock.InOrder(
		w.loans.On("FindByID", mock.Anything, rentalID).Return(rental, nil).Once(),
		w.transports.On("FindByID", mock.Anything, vehicleID).
			Return(fixtureTransport(t, transport.StatusInUse, nil, 80), nil).Once(),
		w.stations.On("FindByID", mock.Anything, dockID).
			Return(fixtureStation(t, station.StatusActive, 5, 10), nil).Once(),
		w.loans.On("Complete", mock.Anything, rentalID, mock.MatchedBy(func(update loan.Update) bool {
			return update.Status == loan.StatusCompleted &&
				update.TotalCost != nil &&
				update.TotalCost.Amount().Equal(decimal.NewFromInt(4000))
		})).Return(rental, nil).Once(),
		w.uow.On("Commit", mock.Anything).Return(nil).Once(),
	)

	cmd, err := commands.NewCompleteLoanCommand(rentalID, dockID, end)
	require.NoError(t, err)

	h := commands.NewCompleteLoanCommandHandler(w.factory)
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	w.loans.AssertExpectations(t)
	w.uow.AssertExpectations(t)
}

func TestCompleteLoanCommandHandler_Handle_LoanNotFound(t *testing.T) {
	ctx := t.Context()
	w := newCreateLoanWorld()

	w.loans.On("FindByID", mock.Anything, rentalID).Return(nil, nil).Once()

	cmd, err := commands.NewCompleteLoanCommand(rentalID, dockID, time.Now())
	require.NoError(t, err)

	h := commands.NewCompleteLoanCommandHandler(w.factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCompleteLoanCommandHandler_Handle_StationCannotAccept(t *testing.T) {
	ctx := t.Context()
	w := newCreateLoanWorld()

	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	rental := fixtureActiveLoan(t, start)

	w.loans.On("FindByID", mock.Anything, rentalID).Return(rental, nil).Once()
	w.transports.On("FindByID", mock.Anything, vehicleID).
		Return(fixtureTransport(t, transport.StatusInUse, nil, 80), nil).Once()
	w.stations.On("FindByID", mock.Anything, dockID).
		Return(fixtureStation(t, station.StatusActive, 10, 10), nil).Once()

	cmd, err := commands.NewCompleteLoanCommand(rentalID, dockID, start.Add(time.Hour))
	require.NoError(t, err)

	h := commands.NewCompleteLoanCommandHandler(w.factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)

	var violation *errs.BusinessRuleViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, commands.RuleStationCannotAccept, violation.Rule)
	w.loans.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompleteLoanCommandHandler_Handle_TerminalLoan(t *testing.T) {
	ctx := t.Context()
	w := newCreateLoanWorld()

	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	cost, err := kernel.NewMoney(decimal.NewFromInt(2000), kernel.DefaultCurrency)
	require.NoError(t, err)

	completed, err := loan.RestoreLoan(rentalID, renterID, vehicleID, dockID, nil,
		start, &end, cost, loan.StatusCompleted, loan.PaymentMethodCash)
	require.NoError(t, err)

	w.loans.On("FindByID", mock.Anything, rentalID).Return(completed, nil).Once()
	w.transports.On("FindByID", mock.Anything, vehicleID).
		Return(fixtureTransport(t, transport.StatusAvailable, nil, 80), nil).Once()
	w.stations.On("FindByID", mock.Anything, dockID).
		Return(fixtureStation(t, station.StatusActive, 5, 10), nil).Once()

	cmd, err := commands.NewCompleteLoanCommand(rentalID, dockID, end.Add(time.Hour))
	require.NoError(t, err)

	h := commands.NewCompleteLoanCommandHandler(w.factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
}
