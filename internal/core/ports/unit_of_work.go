package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command. This ensures proper isolation between concurrent
// operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and hands out repositories bound to the
// running transaction. Client code must explicitly manage the transaction
// lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// UserRepository returns a UserRepository bound to the current
	// transaction.
	UserRepository() UserRepository

	// TransportRepository returns a TransportRepository bound to the current
	// transaction.
	TransportRepository() TransportRepository

	// StationRepository returns a StationRepository bound to the current
	// transaction.
	StationRepository() StationRepository

	// LoanRepository returns a LoanRepository bound to the current
	// transaction.
	LoanRepository() LoanRepository
}
