package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"ecomove/internal/core/application/usecases/commands"
	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/loan"
	"ecomove/internal/core/domain/model/station"
	"ecomove/internal/core/domain/model/transport"
	"ecomove/internal/core/domain/model/user"
	"ecomove/internal/core/ports"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, aggregate *user.User) (*user.User, error) {
	args := m.Called(ctx, aggregate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id kernel.ID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByDocument(ctx context.Context, documentNumber kernel.DocumentNumber) (*user.User, error) {
	args := m.Called(ctx, documentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindAll(ctx context.Context, request ports.PageRequest) (ports.Page[*user.User], error) {
	args := m.Called(ctx, request)
	return args.Get(0).(ports.Page[*user.User]), args.Error(1)
}

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

type MockLoanRepository struct{ mock.Mock }

func (m *MockLoanRepository) Create(ctx context.Context, aggregate *loan.Loan) (*loan.Loan, error) {
	args := m.Called(ctx, aggregate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loan.Loan), args.Error(1)
}

func (m *MockLoanRepository) FindByID(ctx context.Context, id kernel.ID) (*loan.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loan.Loan), args.Error(1)
}

func (m *MockLoanRepository) FindByUser(ctx context.Context, userID kernel.ID, request ports.PageRequest) (ports.Page[*loan.Loan], error) {
	args := m.Called(ctx, userID, request)
	return args.Get(0).(ports.Page[*loan.Loan]), args.Error(1)
}

func (m *MockLoanRepository) FindActiveByUser(ctx context.Context, userID kernel.ID) (*loan.Loan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loan.Loan), args.Error(1)
}

func (m *MockLoanRepository) FindAll(ctx context.Context, request ports.PageRequest) (ports.Page[*loan.Loan], error) {
	args := m.Called(ctx, request)
	return args.Get(0).(ports.Page[*loan.Loan]), args.Error(1)
}

func (m *MockLoanRepository) Complete(ctx context.Context, id kernel.ID, update loan.Update) (*loan.Loan, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loan.Loan), args.Error(1)
}

func (m *MockLoanRepository) Cancel(ctx context.Context, id kernel.ID, update loan.Update) (*loan.Loan, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loan.Loan), args.Error(1)
}

func (m *MockLoanRepository) Update(ctx context.Context, id kernel.ID, update loan.Update) (*loan.Loan, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loan.Loan), args.Error(1)
}

func (m *MockLoanRepository) FindOverdue(ctx context.Context, now time.Time) ([]*loan.Loan, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*loan.Loan), args.Error(1)
}

type MockAuthRepository struct{ mock.Mock }

func (m *MockAuthRepository) Login(ctx context.Context, email kernel.Email, password string) (*ports.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.AuthResult), args.Error(1)
}

func (m *MockAuthRepository) Register(ctx context.Context, registration ports.Registration) (*ports.AuthResult, error) {
	args := m.Called(ctx, registration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.AuthResult), args.Error(1)
}

func (m *MockAuthRepository) RefreshToken(ctx context.Context, refreshToken string) (*ports.Tokens, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Tokens), args.Error(1)
}

func (m *MockAuthRepository) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockAuthRepository) VerifyToken(ctx context.Context, accessToken string) (*user.User, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockLoanUoW struct{ mock.Mock }

func (m *MockLoanUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoanUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoanUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoanUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockLoanUoW) TransportRepository() ports.TransportRepository {
	args := m.Called()
	return args.Get(0).(ports.TransportRepository)
}

func (m *MockLoanUoW) StationRepository() ports.StationRepository {
	args := m.Called()
	return args.Get(0).(ports.StationRepository)
}

func (m *MockLoanUoW) LoanRepository() ports.LoanRepository {
	args := m.Called()
	return args.Get(0).(ports.LoanRepository)
}

type MockLoanUoWFactory struct{ mock.Mock }

func (m *MockLoanUoWFactory) Create() commands.LoanUoW {
	args := m.Called()
	return args.Get(0).(commands.LoanUoW)
}
