package commands

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/pkg/errs"
	"ecomove/internal/pkg/guard"
)

const (
	minRegistrationNameLength = 2
	minPasswordLength         = 8
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to create a new account. Raw
// input is normalized through the identity value objects at construction, so
// a constructed command always carries valid registration data.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name           string
	email          kernel.Email
	documentNumber kernel.DocumentNumber
	phone          kernel.Phone
	password       string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register an account from raw
// user input. The password must have at least 8 characters including an
// uppercase letter, a lowercase letter and a digit.
func NewRegisterUserCommand(
	name string,
	rawEmail string,
	rawDocumentNumber string,
	rawPhone string,
	password string,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(rawEmail),
		cmd.setDocumentNumber(rawDocumentNumber),
		cmd.setPhone(rawPhone),
		cmd.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Name returns the display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the normalized e-mail address.
func (c RegisterUserCommand) Email() kernel.Email {
	return c.email
}

// DocumentNumber returns the normalized document number.
func (c RegisterUserCommand) DocumentNumber() kernel.DocumentNumber {
	return c.documentNumber
}

// Phone returns the normalized mobile number.
func (c RegisterUserCommand) Phone() kernel.Phone {
	return c.phone
}

// Password returns the plain password. It is only ever handed to the auth
// repository, which stores a hash.
func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c *RegisterUserCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < minRegistrationNameLength {
		return errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("name must have at least %d characters", minRegistrationNameLength))
	}

	c.name = name
	return nil
}

func (c *RegisterUserCommand) setEmail(rawEmail string) error {
	email, err := kernel.NewEmail(rawEmail)
	if err != nil {
		return err
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setDocumentNumber(rawDocumentNumber string) error {
	documentNumber, err := kernel.NewDocumentNumber(rawDocumentNumber)
	if err != nil {
		return err
	}

	c.documentNumber = documentNumber
	return nil
}

func (c *RegisterUserCommand) setPhone(rawPhone string) error {
	phone, err := kernel.NewPhone(rawPhone)
	if err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("password must have at least %d characters", minPasswordLength))
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return errs.NewValueIsInvalidErrorWithCause("password",
			errors.New("password must contain an uppercase letter, a lowercase letter and a digit"))
	}

	c.password = password
	return nil
}
