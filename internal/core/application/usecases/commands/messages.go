package commands

import (
	"errors"

	"ecomove/internal/core/ports"
	"ecomove/internal/pkg/errs"
)

// genericFailureMessage is shown for repository codes outside the fixed
// vocabulary, so no internal code ever reaches a user verbatim.
const genericFailureMessage = "something went wrong, please try again"

func userFacingMessages() map[string]string {
	return map[string]string{
		ports.ConflictUserHasActiveLoan:     "you already have an active loan",
		ports.ConflictTransportNotAvailable: "this transport is no longer available",
		ports.ConflictStationFull:           "the destination station has no free slots",
		ports.AuthCodeInvalidCredentials:    "invalid email or password",
		ports.AuthCodeEmailTaken:            "this email is already registered",
		ports.AuthCodeDocumentTaken:         "this document number is already registered",
		ports.AuthCodePhoneTaken:            "this phone number is already registered",
		ports.AuthCodeTokenExpired:          "your session has expired, please log in again",
		ports.AuthCodeTokenInvalid:          "your session is invalid, please log in again",
	}
}

// translateRepositoryError rewrites repository conflict codes into the fixed
// user-facing message per code. Other errors pass through unchanged.
func translateRepositoryError(err error) error {
	var conflict *errs.ConflictError
	if !errors.As(err, &conflict) {
		return err
	}

	message, ok := userFacingMessages()[conflict.Code]
	if !ok {
		message = genericFailureMessage
	}

	return errs.NewConflictErrorWithCause(conflict.Code, message, err)
}
