package queries_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ecomove/internal/core/application/usecases/queries"
	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/station"
	"ecomove/internal/core/domain/model/transport"
	"ecomove/internal/core/ports"
)

type MockTransportRepository struct{ mock.Mock }

func (m *MockTransportRepository) Create(ctx context.Context, aggregate *transport.Transport) (*transport.Transport, error) {
	args := m.Called(ctx, aggregate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transport.Transport), args.Error(1)
}

func (m *MockTransportRepository) FindByID(ctx context.Context, id kernel.ID) (*transport.Transport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transport.Transport), args.Error(1)
}

func (m *MockTransportRepository) FindAll(ctx context.Context, request ports.PageRequest) (ports.Page[*transport.Transport], error) {
	args := m.Called(ctx, request)
	return args.Get(0).(ports.Page[*transport.Transport]), args.Error(1)
}

func (m *MockTransportRepository) FindAvailable(ctx context.Context, stationID *kernel.ID) ([]*transport.Transport, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transport.Transport), args.Error(1)
}

func (m *MockTransportRepository) FindByStation(ctx context.Context, stationID kernel.ID) ([]*transport.Transport, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transport.Transport), args.Error(1)
}

func (m *MockTransportRepository) UpdateStatus(ctx context.Context, id kernel.ID, status transport.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockTransportRepository) Update(ctx context.Context, aggregate *transport.Transport) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTransportRepository) FindNearby(ctx context.Context, center kernel.Coordinate, radiusKm float64, limit int) ([]*transport.Transport, error) {
	args := m.Called(ctx, center, radiusKm, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transport.Transport), args.Error(1)
}

type MockStationRepository struct{ mock.Mock }

func (m *MockStationRepository) Create(ctx context.Context, aggregate *station.Station) (*station.Station, error) {
	args := m.Called(ctx, aggregate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.Station), args.Error(1)
}

func (m *MockStationRepository) FindByID(ctx context.Context, id kernel.ID) (*station.Station, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.Station), args.Error(1)
}

func (m *MockStationRepository) FindAll(ctx context.Context, request ports.PageRequest) (ports.Page[*station.Station], error) {
	args := m.Called(ctx, request)
	return args.Get(0).(ports.Page[*station.Station]), args.Error(1)
}

func (m *MockStationRepository) FindNearby(ctx context.Context, center kernel.Coordinate, radiusKm float64) ([]*station.Station, error) {
	args := m.Called(ctx, center, radiusKm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*station.Station), args.Error(1)
}

func (m *MockStationRepository) FindWithAvailableTransports(ctx context.Context) ([]*station.Station, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*station.Station), args.Error(1)
}

func (m *MockStationRepository) FindWithAvailableSpace(ctx context.Context) ([]*station.Station, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*station.Station), args.Error(1)
}

func (m *MockStationRepository) UpdateTransportCount(ctx context.Context, id kernel.ID, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func testRate(t *testing.T) kernel.Money {
	t.Helper()
	rate, err := kernel.NewMoney(decimal.NewFromInt(2000), kernel.DefaultCurrency)
	require.NoError(t, err)
	return rate
}

func testBicycle(t *testing.T, id kernel.ID, status transport.Status, stationID *kernel.ID) *transport.Transport {
	t.Helper()
	vehicle, err := transport.RestoreBicycle(id, "Urbana 7", status, stationID, testRate(t),
		kernel.FullBatteryLevel(), transport.BicycleSpec{GearCount: 7, BrakeType: "disc"})
	require.NoError(t, err)
	return vehicle
}

func testScooter(t *testing.T, id kernel.ID, status transport.Status, stationID *kernel.ID, batteryPct float64) *transport.Transport {
	t.Helper()
	level, err := kernel.NewBatteryLevel(batteryPct)
	require.NoError(t, err)
	vehicle, err := transport.RestoreElectricScooter(id, "Volt X2", status, stationID, testRate(t), level,
		transport.ElectricScooterSpec{MaxSpeedKmh: 25, RangeKm: 40})
	require.NoError(t, err)
	return vehicle
}

func testStation(t *testing.T, id kernel.ID, lat, lon float64) *station.Station {
	t.Helper()
	coordinate, err := kernel.NewCoordinate(lat, lon)
	require.NoError(t, err)
	dock, err := station.RestoreStation(id, "Dock", "Somewhere 1", coordinate, 10, 5, station.StatusActive)
	require.NoError(t, err)
	return dock
}

func TestFindAvailableTransportsQueryHandler_ByStation(t *testing.T) {
	ctx := t.Context()
	transports := new(MockTransportRepository)
	stations := new(MockStationRepository)

	stationID := kernel.ID(3)
	dock := testStation(t, stationID, 4.6097, -74.0817)

	transports.On("FindByStation", mock.Anything, stationID).Return([]*transport.Transport{
		testBicycle(t, 1, transport.StatusAvailable, &stationID),
		testBicycle(t, 2, transport.StatusMaintenance, &stationID),
		testScooter(t, 3, transport.StatusAvailable, &stationID, 8),
	}, nil).Once()
	stations.On("FindByID", mock.Anything, stationID).Return(dock, nil).Once()

	query, err := queries.NewFindAvailableTransportsQuery(&stationID, nil, transport.TypeUnknown, nil, nil)
	require.NoError(t, err)

	h := queries.NewFindAvailableTransportsQueryHandler(transports, stations)
	result, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, result.Transports, 1)
	assert.Equal(t, kernel.ID(1), result.Transports[0].Transport.ID())
	assert.True(t, dock.IsEqual(result.Transports[0].Station))
	assert.Nil(t, result.Transports[0].DistanceKm)
	assert.Equal(t, 1, result.TotalFound)
	assert.Nil(t, result.SearchCenter)
	transports.AssertNotCalled(t, "FindNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFindAvailableTransportsQueryHandler_StationPrecedence(t *testing.T) {
	ctx := t.Context()
	transports := new(MockTransportRepository)
	stations := new(MockStationRepository)

	stationID := kernel.ID(3)
	center, err := kernel.NewCoordinate(4.6097, -74.0817)
	require.NoError(t, err)

	transports.On("FindByStation", mock.Anything, stationID).
		Return([]*transport.Transport{}, nil).Once()

	query, err := queries.NewFindAvailableTransportsQuery(&stationID, &center, transport.TypeUnknown, nil, nil)
	require.NoError(t, err)

	h := queries.NewFindAvailableTransportsQueryHandler(transports, stations)
	result, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Empty(t, result.Transports)
	transports.AssertExpectations(t)
	transports.AssertNotCalled(t, "FindNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFindAvailableTransportsQueryHandler_ByLocation_SortAndTruncate(t *testing.T) {
	ctx := t.Context()
	transports := new(MockTransportRepository)
	stations := new(MockStationRepository)

	center, err := kernel.NewCoordinate(4.6097, -74.0817)
	require.NoError(t, err)

	nearID := kernel.ID(10)
	farID := kernel.ID(20)
	brokenID := kernel.ID(30)
	near := testStation(t, nearID, 4.62, -74.08)
	far := testStation(t, farID, 4.70, -74.05)

	transports.On("FindNearby", mock.Anything, center, queries.DefaultSearchRadiusKm, 0).
		Return([]*transport.Transport{
			testBicycle(t, 1, transport.StatusAvailable, &farID),
			testBicycle(t, 2, transport.StatusAvailable, &nearID),
			testBicycle(t, 3, transport.StatusAvailable, &brokenID),
		}, nil).Once()
	stations.On("FindByID", mock.Anything, farID).Return(far, nil).Once()
	stations.On("FindByID", mock.Anything, nearID).Return(near, nil).Once()
	stations.On("FindByID", mock.Anything, brokenID).Return(nil, errors.New("connection reset")).Once()

	maxResults := 2
	query, err := queries.NewFindAvailableTransportsQuery(nil, &center, transport.TypeUnknown, nil, &maxResults)
	require.NoError(t, err)

	h := queries.NewFindAvailableTransportsQueryHandler(transports, stations)
	result, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, result.Transports, 2)

	// The transport whose station lookup failed has no distance and sorts
	// first, ahead of the genuinely closest one.
	assert.Equal(t, kernel.ID(3), result.Transports[0].Transport.ID())
	assert.Nil(t, result.Transports[0].Station)
	assert.Nil(t, result.Transports[0].DistanceKm)
	assert.Equal(t, kernel.ID(2), result.Transports[1].Transport.ID())
	require.NotNil(t, result.Transports[1].DistanceKm)

	assert.Equal(t, 3, result.TotalFound)
	assert.Equal(t, &center, result.SearchCenter)
	assert.InDelta(t, queries.DefaultSearchRadiusKm, result.SearchRadius, 0.0001)
}

func TestFindAvailableTransportsQueryHandler_TypeFilter(t *testing.T) {
	ctx := t.Context()
	transports := new(MockTransportRepository)
	stations := new(MockStationRepository)

	stationID := kernel.ID(3)
	transports.On("FindAvailable", mock.Anything, (*kernel.ID)(nil)).Return([]*transport.Transport{
		testBicycle(t, 1, transport.StatusAvailable, &stationID),
		testScooter(t, 2, transport.StatusAvailable, &stationID, 90),
	}, nil).Once()
	stations.On("FindByID", mock.Anything, stationID).
		Return(testStation(t, stationID, 4.6097, -74.0817), nil).Once()

	query, err := queries.NewFindAvailableTransportsQuery(nil, nil, transport.TypeElectricScooter, nil, nil)
	require.NoError(t, err)

	h := queries.NewFindAvailableTransportsQueryHandler(transports, stations)
	result, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, result.Transports, 1)
	assert.Equal(t, transport.TypeElectricScooter, result.Transports[0].Transport.Type())
}

func TestFindAvailableTransportsQueryHandler_RepositoryError(t *testing.T) {
	ctx := t.Context()
	transports := new(MockTransportRepository)
	stations := new(MockStationRepository)

	transports.On("FindAvailable", mock.Anything, (*kernel.ID)(nil)).
		Return(nil, errors.New("connection reset")).Once()

	query, err := queries.NewFindAvailableTransportsQuery(nil, nil, transport.TypeUnknown, nil, nil)
	require.NoError(t, err)

	h := queries.NewFindAvailableTransportsQueryHandler(transports, stations)
	_, err = h.Handle(ctx, query)

	assert.Error(t, err)
}
