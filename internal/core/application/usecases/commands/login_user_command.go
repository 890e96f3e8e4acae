package commands

import (
	"errors"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/pkg/errs"
	"ecomove/internal/pkg/guard"
)

var ErrLoginUserCommandIsNotConstructed = errors.New(
	"LoginUserCommand must be created via NewLoginUserCommand constructor",
)

// LoginUserCommand represents a credential check request. The e-mail is
// normalized at construction so lookups match regardless of input casing.
type LoginUserCommand struct { //nolint:recvcheck //using for validation
	email    kernel.Email
	password string

	guard guard.ConstructorGuard
}

// NewLoginUserCommand creates a command to authenticate a user.
func NewLoginUserCommand(rawEmail, password string) (LoginUserCommand, error) {
	cmd := LoginUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(rawEmail),
		cmd.setPassword(password),
	); err != nil {
		return LoginUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginUserCommand) Validate() error {
	return c.guard.Validate(ErrLoginUserCommandIsNotConstructed)
}

// Email returns the normalized e-mail address.
func (c LoginUserCommand) Email() kernel.Email {
	return c.email
}

// Password returns the plain password.
func (c LoginUserCommand) Password() string {
	return c.password
}

func (c *LoginUserCommand) setEmail(rawEmail string) error {
	email, err := kernel.NewEmail(rawEmail)
	if err != nil {
		return err
	}

	c.email = email
	return nil
}

func (c *LoginUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
