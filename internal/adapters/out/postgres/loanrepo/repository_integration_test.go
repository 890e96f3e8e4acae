package loanrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ecomove/internal/adapters/out/postgres/loanrepo"
	"ecomove/internal/adapters/out/postgres/stationrepo"
	"ecomove/internal/adapters/out/postgres/transportrepo"
	"ecomove/internal/adapters/out/postgres/userrepo"
	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/loan"
	"ecomove/internal/core/domain/model/station"
	"ecomove/internal/core/domain/model/transport"
	"ecomove/internal/core/ports"
	"ecomove/internal/pkg/errs"
)

// LoanRepositoryIntegrationTestSuite exercises the loan repository against a
// real PostgreSQL instance, including the transport and station bookkeeping
// that rides along with loan writes.
type LoanRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *loanrepo.GormLoanRepository

	userID        kernel.ID
	transportID   kernel.ID
	originID      kernel.ID
	destinationID kernel.ID
}

func (suite *LoanRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&userrepo.UserDTO{},
		&stationrepo.StationDTO{},
		&transportrepo.TransportDTO{},
		&loanrepo.LoanDTO{},
	))
}

func (suite *LoanRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE loans, transports, stations, users RESTART IDENTITY").Error)

	suite.repository = loanrepo.NewGormLoanRepository(suite.db)

	suite.userID = suite.seedUser("ana@example.com", "12345678", "3001234567")
	suite.originID = suite.seedStation("Parque 93", 10, 3)
	suite.destinationID = suite.seedStation("Virrey", 10, 2)
	suite.transportID = suite.seedTransport(transport.StatusAvailable, suite.originID)
}

func (suite *LoanRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LoanRepositoryIntegrationTestSuite) TestCreate_Success() {
	ctx := context.Background()

	created := suite.createActiveLoan(ctx)

	suite.NoError(created.ID().Validate())
	suite.Equal(loan.StatusActive, created.Status())
	suite.True(created.TotalCost().IsZero())

	suite.assertTransportState(suite.transportID, transport.StatusInUse, nil)
	suite.assertStationCount(suite.originID, 2)
}

func (suite *LoanRepositoryIntegrationTestSuite) TestCreate_UserHasActiveLoan() {
	ctx := context.Background()
	suite.createActiveLoan(ctx)

	secondTransport := suite.seedTransport(transport.StatusAvailable, suite.originID)
	rental, err := loan.NewLoan(suite.userID, secondTransport, suite.originID,
		loan.PaymentMethodCash, time.Now().UTC(), nil)
	suite.Require().NoError(err)

	_, err = suite.repository.Create(ctx, rental)
	suite.Require().Error(err)

	var conflict *errs.ConflictError
	suite.Require().ErrorAs(err, &conflict)
	suite.Equal(ports.ConflictUserHasActiveLoan, conflict.Code)
}

func (suite *LoanRepositoryIntegrationTestSuite) TestCreate_UserHasOverdueLoan() {
	ctx := context.Background()
	overdue := suite.createOverdueLoan(ctx)
	suite.Equal(loan.StatusOverdue, overdue.Status())

	secondTransport := suite.seedTransport(transport.StatusAvailable, suite.originID)
	rental, err := loan.NewLoan(suite.userID, secondTransport, suite.originID,
		loan.PaymentMethodCash, time.Now().UTC(), nil)
	suite.Require().NoError(err)

	_, err = suite.repository.Create(ctx, rental)
	suite.Require().Error(err)

	var conflict *errs.ConflictError
	suite.Require().ErrorAs(err, &conflict)
	suite.Equal(ports.ConflictUserHasActiveLoan, conflict.Code)
}

func (suite *LoanRepositoryIntegrationTestSuite) TestCreate_TransportNotAvailable() {
	ctx := context.Background()

	busyTransport := suite.seedTransport(transport.StatusInUse, suite.originID)
	rental, err := loan.NewLoan(suite.userID, busyTransport, suite.originID,
		loan.PaymentMethodCreditCard, time.Now().UTC(), nil)
	suite.Require().NoError(err)

	_, err = suite.repository.Create(ctx, rental)
	suite.Require().Error(err)

	var conflict *errs.ConflictError
	suite.Require().ErrorAs(err, &conflict)
	suite.Equal(ports.ConflictTransportNotAvailable, conflict.Code)

	// The failed attempt must leave no loan behind.
	var count int64
	suite.Require().NoError(suite.db.Model(&loanrepo.LoanDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *LoanRepositoryIntegrationTestSuite) TestComplete_Success() {
	ctx := context.Background()
	created := suite.createActiveLoan(ctx)

	end := created.StartDate().Add(65 * time.Minute)
	update, err := created.Complete(suite.destinationID, end, suite.hourlyRate())
	suite.Require().NoError(err)

	completed, err := suite.repository.Complete(ctx, created.ID(), update)
	suite.Require().NoError(err)

	suite.Equal(loan.StatusCompleted, completed.Status())
	suite.Require().NotNil(completed.DestinationStationID())
	suite.True(completed.DestinationStationID().IsEqual(suite.destinationID))
	suite.True(completed.TotalCost().Amount().Equal(decimal.NewFromInt(4000)))

	destinationRef := suite.destinationID
	suite.assertTransportState(suite.transportID, transport.StatusAvailable, &destinationRef)
	suite.assertStationCount(suite.destinationID, 3)
}

func (suite *LoanRepositoryIntegrationTestSuite) TestComplete_DestinationFull() {
	ctx := context.Background()
	created := suite.createActiveLoan(ctx)

	fullStation := suite.seedStation("Full dock", 1, 1)
	end := created.StartDate().Add(time.Hour)
	update, err := created.Complete(fullStation, end, suite.hourlyRate())
	suite.Require().NoError(err)

	_, err = suite.repository.Complete(ctx, created.ID(), update)
	suite.Require().Error(err)

	var conflict *errs.ConflictError
	suite.Require().ErrorAs(err, &conflict)
	suite.Equal(ports.ConflictStationFull, conflict.Code)
}

func (suite *LoanRepositoryIntegrationTestSuite) TestCancel_ReturnsTransportToOrigin() {
	ctx := context.Background()
	created := suite.createActiveLoan(ctx)

	update, err := created.Cancel()
	suite.Require().NoError(err)

	cancelled, err := suite.repository.Cancel(ctx, created.ID(), update)
	suite.Require().NoError(err)

	suite.Equal(loan.StatusCancelled, cancelled.Status())
	suite.True(cancelled.TotalCost().IsZero())

	originRef := suite.originID
	suite.assertTransportState(suite.transportID, transport.StatusAvailable, &originRef)
	suite.assertStationCount(suite.originID, 3)
}

func (suite *LoanRepositoryIntegrationTestSuite) TestFindActiveByUser() {
	ctx := context.Background()

	missing, err := suite.repository.FindActiveByUser(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Nil(missing)

	created := suite.createActiveLoan(ctx)

	active, err := suite.repository.FindActiveByUser(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Require().NotNil(active)
	suite.True(active.IsEqual(created))
}

func (suite *LoanRepositoryIntegrationTestSuite) TestFindActiveByUser_IncludesOverdue() {
	ctx := context.Background()
	overdue := suite.createOverdueLoan(ctx)

	running, err := suite.repository.FindActiveByUser(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Require().NotNil(running)
	suite.True(running.IsEqual(overdue))
	suite.Equal(loan.StatusOverdue, running.Status())
}

func (suite *LoanRepositoryIntegrationTestSuite) TestFindByID_Missing() {
	retrieved, err := suite.repository.FindByID(context.Background(), kernel.ID(9999))
	suite.Require().NoError(err)
	suite.Nil(retrieved)
}

func (suite *LoanRepositoryIntegrationTestSuite) TestFindByUser_Pagination() {
	ctx := context.Background()
	created := suite.createActiveLoan(ctx)

	update, err := created.Complete(suite.destinationID,
		created.StartDate().Add(30*time.Minute), suite.hourlyRate())
	suite.Require().NoError(err)
	_, err = suite.repository.Complete(ctx, created.ID(), update)
	suite.Require().NoError(err)

	secondTransport := suite.seedTransport(transport.StatusAvailable, suite.originID)
	rental, err := loan.NewLoan(suite.userID, secondTransport, suite.originID,
		loan.PaymentMethodCash, time.Now().UTC(), nil)
	suite.Require().NoError(err)
	_, err = suite.repository.Create(ctx, rental)
	suite.Require().NoError(err)

	page, err := suite.repository.FindByUser(ctx, suite.userID, ports.PageRequest{Page: 1, Limit: 1})
	suite.Require().NoError(err)
	suite.Len(page.Data, 1)
	suite.Equal(int64(2), page.Total)
	suite.Equal(2, page.TotalPages)
}

func (suite *LoanRepositoryIntegrationTestSuite) TestFindOverdue() {
	ctx := context.Background()
	now := time.Now().UTC()

	expectedEnd := now.Add(-10 * time.Minute)
	rental, err := loan.NewLoan(suite.userID, suite.transportID, suite.originID,
		loan.PaymentMethodCreditCard, now.Add(-2*time.Hour), &expectedEnd)
	suite.Require().NoError(err)
	created, err := suite.repository.Create(ctx, rental)
	suite.Require().NoError(err)

	overdue, err := suite.repository.FindOverdue(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(overdue, 1)
	suite.True(overdue[0].IsEqual(created))

	// Once marked, the loan stops showing up.
	update, err := created.MarkOverdue(now)
	suite.Require().NoError(err)
	_, err = suite.repository.Update(ctx, created.ID(), update)
	suite.Require().NoError(err)

	overdue, err = suite.repository.FindOverdue(ctx, now)
	suite.Require().NoError(err)
	suite.Empty(overdue)
}

func (suite *LoanRepositoryIntegrationTestSuite) createActiveLoan(ctx context.Context) *loan.Loan {
	rental, err := loan.NewLoan(suite.userID, suite.transportID, suite.originID,
		loan.PaymentMethodCreditCard, time.Now().UTC(), nil)
	suite.Require().NoError(err)

	created, err := suite.repository.Create(ctx, rental)
	suite.Require().NoError(err)
	return created
}

func (suite *LoanRepositoryIntegrationTestSuite) createOverdueLoan(ctx context.Context) *loan.Loan {
	now := time.Now().UTC()
	expectedEnd := now.Add(-10 * time.Minute)
	rental, err := loan.NewLoan(suite.userID, suite.transportID, suite.originID,
		loan.PaymentMethodCreditCard, now.Add(-2*time.Hour), &expectedEnd)
	suite.Require().NoError(err)

	created, err := suite.repository.Create(ctx, rental)
	suite.Require().NoError(err)

	update, err := created.MarkOverdue(now)
	suite.Require().NoError(err)

	flagged, err := suite.repository.Update(ctx, created.ID(), update)
	suite.Require().NoError(err)
	return flagged
}

func (suite *LoanRepositoryIntegrationTestSuite) hourlyRate() kernel.Money {
	rate, err := kernel.NewMoney(decimal.NewFromInt(2000), kernel.DefaultCurrency)
	suite.Require().NoError(err)
	return rate
}

func (suite *LoanRepositoryIntegrationTestSuite) seedUser(email, document, phone string) kernel.ID {
	dto := userrepo.UserDTO{
		Name:             "Ana Gomez",
		Email:            email,
		DocumentNumber:   document,
		Phone:            phone,
		Role:             "USER",
		Status:           "ACTIVE",
		RegistrationDate: time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)

	id, err := kernel.NewID(dto.ID)
	suite.Require().NoError(err)
	return id
}

func (suite *LoanRepositoryIntegrationTestSuite) seedStation(name string, capacity, current int) kernel.ID {
	dto := stationrepo.StationDTO{
		Name:              name,
		Address:           "Cra 11a #93-52",
		Latitude:          4.6097,
		Longitude:         -74.0817,
		MaxCapacity:       capacity,
		CurrentTransports: current,
		Status:            station.StatusActive.String(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)

	id, err := kernel.NewID(dto.ID)
	suite.Require().NoError(err)
	return id
}

func (suite *LoanRepositoryIntegrationTestSuite) seedTransport(
	status transport.Status,
	stationID kernel.ID,
) kernel.ID {
	stationRef := stationID.Int64()
	gearCount := 7
	brakeType := "disc"
	dto := transportrepo.TransportDTO{
		Type:             transport.TypeBicycle.String(),
		Model:            "Urbana 7",
		Status:           status.String(),
		CurrentStationID: &stationRef,
		HourlyRate:       decimal.NewFromInt(2000),
		Currency:         kernel.DefaultCurrency,
		BatteryLevel:     100,
		GearCount:        &gearCount,
		BrakeType:        &brakeType,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)

	id, err := kernel.NewID(dto.ID)
	suite.Require().NoError(err)
	return id
}

func (suite *LoanRepositoryIntegrationTestSuite) assertTransportState(
	id kernel.ID,
	status transport.Status,
	stationID *kernel.ID,
) {
	var dto transportrepo.TransportDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", id.Int64()).Error)
	suite.Equal(status.String(), dto.Status)

	if stationID == nil {
		suite.Nil(dto.CurrentStationID)
	} else {
		suite.Require().NotNil(dto.CurrentStationID)
		suite.Equal(stationID.Int64(), *dto.CurrentStationID)
	}
}

func (suite *LoanRepositoryIntegrationTestSuite) assertStationCount(id kernel.ID, expected int) {
	var dto stationrepo.StationDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", id.Int64()).Error)
	suite.Equal(expected, dto.CurrentTransports)
}

func TestLoanRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LoanRepositoryIntegrationTestSuite))
}
