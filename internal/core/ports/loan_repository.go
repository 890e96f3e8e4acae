package ports

import (
	"context"
	"time"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/loan"
)

// Loan repository conflict codes. The repository is the authoritative
// enforcement point for these rules; use-case pre-checks are advisory.
const (
	// ConflictUserHasActiveLoan is reported when creating a loan for a user
	// who already has one running.
	ConflictUserHasActiveLoan = "USER_HAS_ACTIVE_LOAN"

	// ConflictTransportNotAvailable is reported when the transport was taken
	// between the use-case check and the transactional write.
	ConflictTransportNotAvailable = "TRANSPORT_NOT_AVAILABLE"

	// ConflictStationFull is reported when completing a loan at a station
	// with no free dock slot.
	ConflictStationFull = "STATION_FULL"
)

// LoanRepository defines the persistence contract for loan aggregates.
// Create and Complete are transactional: they atomically adjust the loan,
// the transport status and the station occupancy, and re-check the
// at-most-one-active-loan and capacity rules server-side.
type LoanRepository interface {
	// Create persists a new ACTIVE loan and returns the stored aggregate
	// with its assigned identifier. Atomically flips the transport to IN_USE
	// and frees a slot at the origin station. A running loan, ACTIVE or
	// OVERDUE, blocks the user from creating another.
	Create(ctx context.Context, aggregate *loan.Loan) (*loan.Loan, error)

	// FindByID retrieves a loan by identifier. Returns (nil, nil) when no
	// loan matches.
	FindByID(ctx context.Context, id kernel.ID) (*loan.Loan, error)

	// FindByUser retrieves one page of a user's loan history, newest first.
	FindByUser(ctx context.Context, userID kernel.ID, request PageRequest) (Page[*loan.Loan], error)

	// FindActiveByUser retrieves the user's running loan, ACTIVE or OVERDUE.
	// Returns (nil, nil) when the user has none.
	FindActiveByUser(ctx context.Context, userID kernel.ID) (*loan.Loan, error)

	// FindAll retrieves one page of loans.
	FindAll(ctx context.Context, request PageRequest) (Page[*loan.Loan], error)

	// Complete applies a completion payload. Atomically docks the transport
	// at the destination station and flips it back to AVAILABLE.
	Complete(ctx context.Context, id kernel.ID, update loan.Update) (*loan.Loan, error)

	// Cancel applies a cancellation payload and releases the transport.
	Cancel(ctx context.Context, id kernel.ID, update loan.Update) (*loan.Loan, error)

	// Update applies a partial-update payload without side effects on other
	// aggregates (extensions, overdue flags).
	Update(ctx context.Context, id kernel.ID, update loan.Update) (*loan.Loan, error)

	// FindOverdue retrieves ACTIVE loans whose end date lies before now.
	FindOverdue(ctx context.Context, now time.Time) ([]*loan.Loan, error)
}
