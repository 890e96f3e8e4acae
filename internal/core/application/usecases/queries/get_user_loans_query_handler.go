package queries

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/loan"
	"ecomove/internal/core/ports"
)

// GetUserLoansQueryHandler reads a user's rental history straight from the
// database, bypassing the aggregates.
type GetUserLoansQueryHandler struct {
	db *gorm.DB
}

// NewGetUserLoansQueryHandler creates a handler for rental history queries.
func NewGetUserLoansQueryHandler(db *gorm.DB) GetUserLoansQueryHandler {
	return GetUserLoansQueryHandler{db: db}
}

// Handle executes the query and returns one page of the user's rentals,
// newest first.
func (h GetUserLoansQueryHandler) Handle(
	ctx context.Context,
	query GetUserLoansQuery,
) (ports.Page[GetUserLoansQueryResponse], error) {
	if err := query.Validate(); err != nil {
		return ports.Page[GetUserLoansQueryResponse]{}, err
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(*)
		FROM loans
		WHERE user_id = ?
	`, query.UserID().Int64()).Scan(&total).Error
	if err != nil {
		return ports.Page[GetUserLoansQueryResponse]{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			transport_id,
			origin_station_id,
			destination_station_id,
			start_date,
			end_date,
			total_cost,
			currency,
			status,
			payment_method
		FROM loans
		WHERE user_id = ?
		ORDER BY start_date DESC, id DESC
		LIMIT ? OFFSET ?
	`, query.UserID().Int64(), query.Page().Limit, query.Page().Offset()).Rows()
	if err != nil {
		return ports.Page[GetUserLoansQueryResponse]{}, err
	}
	defer rows.Close()

	rentals := make([]GetUserLoansQueryResponse, 0)
	for rows.Next() {
		rental, scanErr := scanUserLoanRow(rows)
		if scanErr != nil {
			return ports.Page[GetUserLoansQueryResponse]{}, scanErr
		}
		rentals = append(rentals, rental)
	}
	if err = rows.Err(); err != nil {
		return ports.Page[GetUserLoansQueryResponse]{}, err
	}

	return ports.NewPage(rentals, total, query.Page()), nil
}

func scanUserLoanRow(rows *sql.Rows) (GetUserLoansQueryResponse, error) {
	var (
		rental        GetUserLoansQueryResponse
		id            int64
		transportID   int64
		originID      int64
		destinationID sql.NullInt64
		endDate       sql.NullTime
		totalCost     decimal.Decimal
		currency      string
		status        string
		paymentMethod string
	)

	err := rows.Scan(
		&id,
		&transportID,
		&originID,
		&destinationID,
		&rental.StartDate,
		&endDate,
		&totalCost,
		&currency,
		&status,
		&paymentMethod,
	)
	if err != nil {
		return GetUserLoansQueryResponse{}, err
	}

	rental.ID, err = kernel.NewID(id)
	if err != nil {
		return GetUserLoansQueryResponse{}, err
	}
	rental.TransportID, err = kernel.NewID(transportID)
	if err != nil {
		return GetUserLoansQueryResponse{}, err
	}
	rental.OriginStationID, err = kernel.NewID(originID)
	if err != nil {
		return GetUserLoansQueryResponse{}, err
	}

	if destinationID.Valid {
		destination, idErr := kernel.NewID(destinationID.Int64)
		if idErr != nil {
			return GetUserLoansQueryResponse{}, idErr
		}
		rental.DestinationStationID = &destination
	}
	if endDate.Valid {
		end := endDate.Time
		rental.EndDate = &end
	}

	rental.TotalCost, err = kernel.NewMoney(totalCost, currency)
	if err != nil {
		return GetUserLoansQueryResponse{}, err
	}

	rental.Status, err = loan.StatusFromString(status)
	if err != nil {
		return GetUserLoansQueryResponse{}, err
	}
	rental.PaymentMethod, err = loan.PaymentMethodFromString(paymentMethod)
	if err != nil {
		return GetUserLoansQueryResponse{}, err
	}

	return rental, nil
}
