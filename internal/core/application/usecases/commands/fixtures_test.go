package commands_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/loan"
	"ecomove/internal/core/domain/model/station"
	"ecomove/internal/core/domain/model/transport"
	"ecomove/internal/core/domain/model/user"
)

const (
	renterID  = kernel.ID(1)
	vehicleID = kernel.ID(2)
	dockID    = kernel.ID(3)
	rentalID  = kernel.ID(4)
)

func fixtureUser(t *testing.T, status user.Status) *user.User {
	t.Helper()

	email, err := kernel.NewEmail("ana@example.com")
	require.NoError(t, err)
	document, err := kernel.NewDocumentNumber("12345678")
	require.NoError(t, err)
	phone, err := kernel.NewPhone("3001234567")
	require.NoError(t, err)

	account, err := user.RestoreUser(renterID, "Ana Gomez", email, document, phone,
		user.RoleUser, status, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return account
}

func fixtureTransport(t *testing.T, status transport.Status, stationID *kernel.ID, batteryPct float64) *transport.Transport {
	t.Helper()

	rate, err := kernel.NewMoney(decimal.NewFromInt(2000), kernel.DefaultCurrency)
	require.NoError(t, err)
	level, err := kernel.NewBatteryLevel(batteryPct)
	require.NoError(t, err)

	vehicle, err := transport.RestoreElectricScooter(vehicleID, "Volt X2", status,
		stationID, rate, level, transport.ElectricScooterSpec{MaxSpeedKmh: 25, RangeKm: 40})
	require.NoError(t, err)
	return vehicle
}

func fixtureStation(t *testing.T, status station.Status, current, capacity int) *station.Station {
	t.Helper()

	coordinate, err := kernel.NewCoordinate(4.6097, -74.0817)
	require.NoError(t, err)

	dock, err := station.RestoreStation(dockID, "Parque 93", "Cra 11a #93-52",
		coordinate, capacity, current, status)
	require.NoError(t, err)
	return dock
}

func fixtureActiveLoan(t *testing.T, start time.Time) *loan.Loan {
	t.Helper()

	zero, err := kernel.Zero(kernel.DefaultCurrency)
	require.NoError(t, err)

	rental, err := loan.RestoreLoan(rentalID, renterID, vehicleID, dockID, nil,
		start, nil, zero, loan.StatusActive, loan.PaymentMethodCreditCard)
	require.NoError(t, err)
	return rental
}
