package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomove/internal/pkg/errs"
)

func echoForTest() *echo.Echo {
	e := echo.New()
	e.Validator = requestValidator{validate: validator.New()}
	return e
}

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "required value",
			err:            errs.NewValueIsRequiredError("userId"),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid value",
			err:            errs.NewValueIsInvalidError("email"),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "out of range",
			err:            errs.NewValueIsOutOfRangeError("radiusKm", -1, 0, nil),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "not found",
			err:            errs.NewObjectNotFoundError("loanId", int64(7)),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "business rule",
			err:            errs.NewBusinessRuleViolationError("LOAN_NOT_ACTIVE", "loan is not active"),
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "conflict",
			err:            errs.NewConflictError("TRANSPORT_NOT_AVAILABLE", "transport is not available"),
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "unknown",
			err:            assert.AnError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e := echoForTest()
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			recorder := httptest.NewRecorder()
			ctx := e.NewContext(request, recorder)

			err := respondError(ctx, test.err)

			require.NoError(t, err)
			assert.Equal(t, test.expectedStatus, recorder.Code)
		})
	}
}

func TestRespondError_ConflictUsesUserMessage(t *testing.T) {
	e := echoForTest()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	ctx := e.NewContext(request, recorder)

	err := respondError(ctx, errs.NewConflictError("STATION_FULL", "destination station has no free docks"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "destination station has no free docks")
}

func TestCreateLoan_RejectsInvalidBody(t *testing.T) {
	server := &Server{}
	e := server.NewEcho()

	tests := []struct {
		name string
		body string
	}{
		{"missing fields", `{"userId": 1}`},
		{"non positive ids", `{"userId": 0, "transportId": -1, "originStationId": 2, "paymentMethod": "CASH"}`},
		{"malformed json", `{"userId": `},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/v1/loans", strings.NewReader(test.body))
			request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			recorder := httptest.NewRecorder()

			e.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestCreateLoan_RejectsUnknownPaymentMethod(t *testing.T) {
	server := &Server{}
	e := server.NewEcho()

	body := `{"userId": 1, "transportId": 2, "originStationId": 3, "paymentMethod": "BARTER"}`
	request := httptest.NewRequest(http.MethodPost, "/api/v1/loans", strings.NewReader(body))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()

	e.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSearchTransports_RejectsUnknownType(t *testing.T) {
	server := &Server{}
	e := server.NewEcho()

	request := httptest.NewRequest(http.MethodGet, "/api/v1/transports/search?type=HOVERBOARD", nil)
	recorder := httptest.NewRecorder()

	e.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
