package queries

import (
	"errors"
	"time"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/loan"
	"ecomove/internal/core/ports"
	"ecomove/internal/pkg/errs"
	"ecomove/internal/pkg/guard"
)

var ErrGetUserLoansQueryIsNotConstructed = errors.New(
	"GetUserLoansQuery must be created via NewGetUserLoansQuery constructor",
)

// GetUserLoansQuery retrieves a user's rental history, newest first.
type GetUserLoansQuery struct { //nolint:recvcheck //using for validation
	userID kernel.ID
	page   ports.PageRequest

	guard guard.ConstructorGuard
}

// NewGetUserLoansQuery creates a query for a user's rental history. The page
// request is normalized to the defaults when out of range.
func NewGetUserLoansQuery(userID kernel.ID, page ports.PageRequest) (GetUserLoansQuery, error) {
	query := GetUserLoansQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setUserID(userID); err != nil {
		return GetUserLoansQuery{}, err
	}
	query.page = page.Normalize()

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserLoansQuery) Validate() error {
	return q.guard.Validate(ErrGetUserLoansQueryIsNotConstructed)
}

// UserID returns the renter's identifier.
func (q GetUserLoansQuery) UserID() kernel.ID {
	return q.userID
}

// Page returns the normalized page request.
func (q GetUserLoansQuery) Page() ports.PageRequest {
	return q.page
}

func (q *GetUserLoansQuery) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	q.userID = userID
	return nil
}

// GetUserLoansQueryResponse is one row of a user's rental history.
type GetUserLoansQueryResponse struct {
	ID                   kernel.ID
	TransportID          kernel.ID
	OriginStationID      kernel.ID
	DestinationStationID *kernel.ID
	StartDate            time.Time
	EndDate              *time.Time
	TotalCost            kernel.Money
	Status               loan.Status
	PaymentMethod        loan.PaymentMethod
}
