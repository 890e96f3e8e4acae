package http

import (
	"time"

	"ecomove/internal/core/application/usecases/queries"
	"ecomove/internal/core/domain/model/loan"
	"ecomove/internal/core/domain/model/transport"
	"ecomove/internal/core/domain/model/user"
	"ecomove/internal/core/ports"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	DocumentNumber string `json:"documentNumber" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Password       string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type TokensResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
	TokenType    string `json:"tokenType"`
}

type UserResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	DocumentNumber   string    `json:"documentNumber"`
	Phone            string    `json:"phone"`
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	RegistrationDate time.Time `json:"registrationDate"`
}

type AuthResponse struct {
	User   UserResponse   `json:"user"`
	Tokens TokensResponse `json:"tokens"`
}

type CreateLoanRequest struct {
	UserID          int64      `json:"userId" validate:"required,gt=0"`
	TransportID     int64      `json:"transportId" validate:"required,gt=0"`
	OriginStationID int64      `json:"originStationId" validate:"required,gt=0"`
	PaymentMethod   string     `json:"paymentMethod" validate:"required"`
	ExpectedEndDate *time.Time `json:"expectedEndDate"`
}

type CompleteLoanRequest struct {
	DestinationStationID int64      `json:"destinationStationId" validate:"required,gt=0"`
	EndDate              *time.Time `json:"endDate"`
}

type ExtendLoanRequest struct {
	NewEndDate time.Time `json:"newEndDate" validate:"required"`
}

type LoanResponse struct {
	ID                   int64      `json:"id"`
	UserID               int64      `json:"userId"`
	TransportID          int64      `json:"transportId"`
	OriginStationID      int64      `json:"originStationId"`
	DestinationStationID *int64     `json:"destinationStationId,omitempty"`
	StartDate            time.Time  `json:"startDate"`
	EndDate              *time.Time `json:"endDate,omitempty"`
	TotalCost            string     `json:"totalCost"`
	Currency             string     `json:"currency"`
	Status               string     `json:"status"`
	PaymentMethod        string     `json:"paymentMethod"`
}

type LoanHistoryResponse struct {
	Data       []LoanResponse `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
}

type SearchTransportsRequest struct {
	StationID     *int64   `query:"stationId" validate:"omitempty,gt=0"`
	Latitude      *float64 `query:"lat"`
	Longitude     *float64 `query:"lon"`
	TransportType string   `query:"type"`
	RadiusKm      *float64 `query:"radiusKm" validate:"omitempty,gt=0"`
	MaxResults    *int     `query:"maxResults" validate:"omitempty,gt=0"`
}

type StationResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Address           string  `json:"address"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	MaxCapacity       int     `json:"maxCapacity"`
	CurrentTransports int     `json:"currentTransports"`
	Status            string  `json:"status"`
}

type TransportResponse struct {
	ID             int64            `json:"id"`
	Type           string           `json:"type"`
	Model          string           `json:"model"`
	Status         string           `json:"status"`
	HourlyRate     string           `json:"hourlyRate"`
	Currency       string           `json:"currency"`
	BatteryLevel   float64          `json:"batteryLevel"`
	Specifications map[string]any   `json:"specifications"`
	Station        *StationResponse `json:"station,omitempty"`
	DistanceKm     *float64         `json:"distanceKm,omitempty"`
}

type SearchTransportsResponse struct {
	Transports   []TransportResponse `json:"transports"`
	TotalFound   int                 `json:"totalFound"`
	SearchCenter *CoordinateResponse `json:"searchCenter,omitempty"`
	SearchRadius float64             `json:"searchRadius"`
}

type CoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func userToResponse(account *user.User) UserResponse {
	return UserResponse{
		ID:               account.ID().Int64(),
		Name:             account.Name(),
		Email:            account.Email().Value(),
		DocumentNumber:   account.DocumentNumber().Value(),
		Phone:            account.Phone().Value(),
		Role:             account.Role().String(),
		Status:           account.Status().String(),
		RegistrationDate: account.RegistrationDate(),
	}
}

func tokensToResponse(tokens ports.Tokens) TokensResponse {
	return TokensResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
		TokenType:    tokens.TokenType,
	}
}

func loanToResponse(rental *loan.Loan) LoanResponse {
	response := LoanResponse{
		ID:              rental.ID().Int64(),
		UserID:          rental.UserID().Int64(),
		TransportID:     rental.TransportID().Int64(),
		OriginStationID: rental.OriginStationID().Int64(),
		StartDate:       rental.StartDate(),
		EndDate:         rental.EndDate(),
		TotalCost:       rental.TotalCost().Amount().String(),
		Currency:        rental.TotalCost().Currency(),
		Status:          rental.Status().String(),
		PaymentMethod:   rental.PaymentMethod().String(),
	}
	if destination := rental.DestinationStationID(); destination != nil {
		raw := destination.Int64()
		response.DestinationStationID = &raw
	}
	return response
}

func loanRowToResponse(row queries.GetUserLoansQueryResponse) LoanResponse {
	response := LoanResponse{
		ID:              row.ID.Int64(),
		TransportID:     row.TransportID.Int64(),
		OriginStationID: row.OriginStationID.Int64(),
		StartDate:       row.StartDate,
		EndDate:         row.EndDate,
		TotalCost:       row.TotalCost.Amount().String(),
		Currency:        row.TotalCost.Currency(),
		Status:          row.Status.String(),
		PaymentMethod:   row.PaymentMethod.String(),
	}
	if row.DestinationStationID != nil {
		raw := row.DestinationStationID.Int64()
		response.DestinationStationID = &raw
	}
	return response
}

func hitToResponse(hit queries.AvailableTransport) TransportResponse {
	vehicle := hit.Transport
	response := TransportResponse{
		ID:             vehicle.ID().Int64(),
		Type:           vehicle.Type().String(),
		Model:          vehicle.Model(),
		Status:         vehicle.Status().String(),
		HourlyRate:     vehicle.HourlyRate().Amount().String(),
		Currency:       vehicle.HourlyRate().Currency(),
		BatteryLevel:   vehicle.BatteryLevel().Percentage(),
		Specifications: vehicle.Specifications(),
		DistanceKm:     hit.DistanceKm,
	}
	if hit.Station != nil {
		response.Station = &StationResponse{
			ID:                hit.Station.ID().Int64(),
			Name:              hit.Station.Name(),
			Address:           hit.Station.Address(),
			Latitude:          hit.Station.Coordinate().Latitude(),
			Longitude:         hit.Station.Coordinate().Longitude(),
			MaxCapacity:       hit.Station.MaxCapacity(),
			CurrentTransports: hit.Station.CurrentTransports(),
			Status:            hit.Station.Status().String(),
		}
	}
	return response
}

// transportTypeFromRequest maps an optional query value, empty meaning no
// filter.
func transportTypeFromRequest(value string) (transport.Type, error) {
	if value == "" {
		return transport.TypeUnknown, nil
	}
	return transport.TypeFromString(value)
}
