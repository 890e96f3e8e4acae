// Package http exposes the rental operations over an echo server. Handlers
// bind and validate request DTOs, hand off to the use cases and translate
// the error taxonomy into status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"ecomove/internal/core/application/usecases/commands"
	"ecomove/internal/core/application/usecases/queries"
	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/loan"
	"ecomove/internal/core/ports"
	"ecomove/internal/pkg/errs"
)

// Server wires the HTTP routes to the command and query handlers.
type Server struct {
	registerUserHandler commands.RegisterUserCommandHandler
	loginUserHandler    commands.LoginUserCommandHandler
	authRepository      ports.AuthRepository

	createLoanHandler   commands.CreateLoanCommandHandler
	completeLoanHandler commands.CompleteLoanCommandHandler
	cancelLoanHandler   commands.CancelLoanCommandHandler
	extendLoanHandler   commands.ExtendLoanCommandHandler

	findTransportsHandler queries.FindAvailableTransportsQueryHandler
	getUserLoansHandler   queries.GetUserLoansQueryHandler
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	loginUserHandler commands.LoginUserCommandHandler,
	authRepository ports.AuthRepository,
	createLoanHandler commands.CreateLoanCommandHandler,
	completeLoanHandler commands.CompleteLoanCommandHandler,
	cancelLoanHandler commands.CancelLoanCommandHandler,
	extendLoanHandler commands.ExtendLoanCommandHandler,
	findTransportsHandler queries.FindAvailableTransportsQueryHandler,
	getUserLoansHandler queries.GetUserLoansQueryHandler,
) *Server {
	return &Server{
		registerUserHandler:   registerUserHandler,
		loginUserHandler:      loginUserHandler,
		authRepository:        authRepository,
		createLoanHandler:     createLoanHandler,
		completeLoanHandler:   completeLoanHandler,
		cancelLoanHandler:     cancelLoanHandler,
		extendLoanHandler:     extendLoanHandler,
		findTransportsHandler: findTransportsHandler,
		getUserLoansHandler:   getUserLoansHandler,
	}
}

type requestValidator struct {
	validate *validator.Validate
}

func (v requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// NewEcho builds the echo instance with middleware, validation and routes.
func (s *Server) NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = requestValidator{validate: validator.New()}
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	api := e.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.Register)
	authGroup.POST("/login", s.Login)
	authGroup.POST("/refresh", s.Refresh)
	authGroup.POST("/logout", s.Logout)

	loans := api.Group("/loans")
	loans.POST("", s.CreateLoan)
	loans.POST("/:id/complete", s.CompleteLoan)
	loans.POST("/:id/cancel", s.CancelLoan)
	loans.POST("/:id/extend", s.ExtendLoan)

	api.GET("/users/:id/loans", s.GetUserLoans)
	api.GET("/transports/search", s.SearchTransports)

	return e
}

// Register handles POST /api/v1/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var request RegisterRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(
		request.Name, request.Email, request.DocumentNumber, request.Phone, request.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AuthResponse{
		User:   userToResponse(result.User),
		Tokens: tokensToResponse(result.Tokens),
	})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	cmd, err := commands.NewLoginUserCommand(request.Email, request.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.loginUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AuthResponse{
		User:   userToResponse(result.User),
		Tokens: tokensToResponse(result.Tokens),
	})
}

// Refresh handles POST /api/v1/auth/refresh.
func (s *Server) Refresh(ctx echo.Context) error {
	var request RefreshRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	tokens, err := s.authRepository.RefreshToken(ctx.Request().Context(), request.RefreshToken)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tokensToResponse(*tokens))
}

// Logout handles POST /api/v1/auth/logout.
func (s *Server) Logout(ctx echo.Context) error {
	var request RefreshRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	if err := s.authRepository.Logout(ctx.Request().Context(), request.RefreshToken); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateLoan handles POST /api/v1/loans.
func (s *Server) CreateLoan(ctx echo.Context) error {
	var request CreateLoanRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	paymentMethod, err := loan.PaymentMethodFromString(request.PaymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	userID, transportID, originID, err := newIDs(request.UserID, request.TransportID, request.OriginStationID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateLoanCommand(
		userID, transportID, originID, paymentMethod, request.ExpectedEndDate)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createLoanHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, loanToResponse(created))
}

// CompleteLoan handles POST /api/v1/loans/:id/complete. The end date
// defaults to now.
func (s *Server) CompleteLoan(ctx echo.Context) error {
	loanID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request CompleteLoanRequest
	if err = bindAndValidate(ctx, &request); err != nil {
		return err
	}

	destinationID, err := kernel.NewID(request.DestinationStationID)
	if err != nil {
		return respondError(ctx, err)
	}

	endDate := time.Now().UTC()
	if request.EndDate != nil {
		endDate = *request.EndDate
	}

	cmd, err := commands.NewCompleteLoanCommand(loanID, destinationID, endDate)
	if err != nil {
		return respondError(ctx, err)
	}

	completed, err := s.completeLoanHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loanToResponse(completed))
}

// CancelLoan handles POST /api/v1/loans/:id/cancel.
func (s *Server) CancelLoan(ctx echo.Context) error {
	loanID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelLoanCommand(loanID)
	if err != nil {
		return respondError(ctx, err)
	}

	cancelled, err := s.cancelLoanHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loanToResponse(cancelled))
}

// ExtendLoan handles POST /api/v1/loans/:id/extend.
func (s *Server) ExtendLoan(ctx echo.Context) error {
	loanID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request ExtendLoanRequest
	if err = bindAndValidate(ctx, &request); err != nil {
		return err
	}

	cmd, err := commands.NewExtendLoanCommand(loanID, request.NewEndDate)
	if err != nil {
		return respondError(ctx, err)
	}

	extended, err := s.extendLoanHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loanToResponse(extended))
}

// GetUserLoans handles GET /api/v1/users/:id/loans.
func (s *Server) GetUserLoans(ctx echo.Context) error {
	userID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var page ports.PageRequest
	if err = echo.QueryParamsBinder(ctx).
		Int("page", &page.Page).
		Int("limit", &page.Limit).
		BindError(); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("page", err))
	}

	query, err := queries.NewGetUserLoansQuery(userID, page)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getUserLoansHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	history := LoanHistoryResponse{
		Data:       make([]LoanResponse, 0, len(result.Data)),
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}
	for _, row := range result.Data {
		history.Data = append(history.Data, loanRowToResponse(row))
	}

	return ctx.JSON(http.StatusOK, history)
}

// SearchTransports handles GET /api/v1/transports/search.
func (s *Server) SearchTransports(ctx echo.Context) error {
	var request SearchTransportsRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return err
	}

	transportType, err := transportTypeFromRequest(request.TransportType)
	if err != nil {
		return respondError(ctx, err)
	}

	var stationID *kernel.ID
	if request.StationID != nil {
		id, idErr := kernel.NewID(*request.StationID)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		stationID = &id
	}

	var userLocation *kernel.Coordinate
	if request.Latitude != nil && request.Longitude != nil {
		center, coordErr := kernel.NewCoordinate(*request.Latitude, *request.Longitude)
		if coordErr != nil {
			return respondError(ctx, coordErr)
		}
		userLocation = &center
	}

	query, err := queries.NewFindAvailableTransportsQuery(
		stationID, userLocation, transportType, request.RadiusKm, request.MaxResults)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.findTransportsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := SearchTransportsResponse{
		Transports:   make([]TransportResponse, 0, len(result.Transports)),
		TotalFound:   result.TotalFound,
		SearchRadius: result.SearchRadius,
	}
	for _, hit := range result.Transports {
		response.Transports = append(response.Transports, hitToResponse(hit))
	}
	if result.SearchCenter != nil {
		response.SearchCenter = &CoordinateResponse{
			Latitude:  result.SearchCenter.Latitude(),
			Longitude: result.SearchCenter.Longitude(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func bindAndValidate(ctx echo.Context, request any) error {
	if err := ctx.Bind(request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := ctx.Validate(request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}
	return nil
}

func pathID(ctx echo.Context) (kernel.ID, error) {
	var raw int64
	if err := echo.PathParamsBinder(ctx).Int64("id", &raw).BindError(); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return kernel.NewID(raw)
}

func newIDs(values ...int64) (kernel.ID, kernel.ID, kernel.ID, error) {
	ids := make([]kernel.ID, len(values))
	for i, value := range values {
		id, err := kernel.NewID(value)
		if err != nil {
			return 0, 0, 0, err
		}
		ids[i] = id
	}
	return ids[0], ids[1], ids[2], nil
}

// respondError maps the error taxonomy onto HTTP status codes. Conflict
// messages are already user-facing; everything else keeps its error text.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := err.Error()

	var conflict *errs.ConflictError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrBusinessRuleViolated):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &conflict):
		status = http.StatusConflict
		message = conflict.Message
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}
