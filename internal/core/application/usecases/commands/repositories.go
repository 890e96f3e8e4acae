// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"ecomove/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a
	// transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// TransportRepoFactory provides access to the transport repository
	// within a transaction.
	TransportRepoFactory interface {
		TransportRepository() ports.TransportRepository
	}

	// StationRepoFactory provides access to the station repository within a
	// transaction.
	StationRepoFactory interface {
		StationRepository() ports.StationRepository
	}

	// LoanRepoFactory provides access to the loan repository within a
	// transaction.
	LoanRepoFactory interface {
		LoanRepository() ports.LoanRepository
	}

	// LoanUoW manages transactions for rental operations. Loan commands
	// read users, transports and stations and write loans, so the full
	// repository set is exposed.
	LoanUoW interface {
		TxManager
		UserRepoFactory
		TransportRepoFactory
		StationRepoFactory
		LoanRepoFactory
	}

	// LoanUoWFactory creates new loan unit of work instances.
	LoanUoWFactory interface {
		Create() LoanUoW
	}
)
