// Package postgres provides the GORM-based Unit of Work tying the four
// repositories to one database transaction.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if _, err := uow.LoanRepository().Create(ctx, rental); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each Create() call returns an isolated instance; concurrent operations
// must not share one. Rolling back after a successful commit is a no-op
// error, which makes the deferred rollback above safe.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"ecomove/internal/adapters/out/postgres/loanrepo"
	"ecomove/internal/adapters/out/postgres/stationrepo"
	"ecomove/internal/adapters/out/postgres/transportrepo"
	"ecomove/internal/adapters/out/postgres/userrepo"
	"ecomove/internal/core/application/usecases/commands"
	"ecomove/internal/core/ports"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// LoanUoWFactory adapts the factory to the shape the loan command handlers
// consume.
type LoanUoWFactory struct {
	inner *GormUnitOfWorkFactory
}

// NewLoanUoWFactory wraps a unit of work factory for the command handlers.
func NewLoanUoWFactory(inner *GormUnitOfWorkFactory) LoanUoWFactory {
	return LoanUoWFactory{inner: inner}
}

// Create produces a fresh unit of work for one loan command.
func (f LoanUoWFactory) Create() commands.LoanUoW {
	return f.inner.Create()
}

// GormUnitOfWork coordinates one database transaction across the
// repositories. Repositories requested before Begin run on the shared
// connection; after Begin they run on the transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a new database transaction. Calling Begin again on a running
// unit of work is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the current transaction. Returns an error when no
// transaction is active or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction. Returns an error when no
// transaction is active or the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// UserRepository returns a user repository bound to the current transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.handle())
}

// TransportRepository returns a transport repository bound to the current
// transaction.
func (uow *GormUnitOfWork) TransportRepository() ports.TransportRepository {
	return transportrepo.NewGormTransportRepository(uow.handle())
}

// StationRepository returns a station repository bound to the current
// transaction.
func (uow *GormUnitOfWork) StationRepository() ports.StationRepository {
	return stationrepo.NewGormStationRepository(uow.handle())
}

// LoanRepository returns a loan repository bound to the current transaction.
func (uow *GormUnitOfWork) LoanRepository() ports.LoanRepository {
	return loanrepo.NewGormLoanRepository(uow.handle())
}

func (uow *GormUnitOfWork) handle() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
