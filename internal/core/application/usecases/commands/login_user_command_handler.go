package commands

import (
	"context"
	"fmt"

	"ecomove/internal/core/ports"
	"ecomove/internal/pkg/errs"
)

// RuleUserNotActive is reported when credentials check out but the account
// is INACTIVE or SUSPENDED.
const RuleUserNotActive = "USER_NOT_ACTIVE"

// LoginUserCommandHandler authenticates users through the auth capability.
// An authenticated but disabled account is rejected here, after the
// credential check, so a suspended user learns their account state rather
// than being told the password is wrong.
type LoginUserCommandHandler struct {
	authRepository ports.AuthRepository
}

// NewLoginUserCommandHandler creates a handler for credential checks.
func NewLoginUserCommandHandler(authRepository ports.AuthRepository) LoginUserCommandHandler {
	return LoginUserCommandHandler{
		authRepository: authRepository,
	}
}

// Handle processes the login command and returns the authenticated user with
// freshly issued tokens.
func (h *LoginUserCommandHandler) Handle(ctx context.Context, cmd LoginUserCommand) (*ports.AuthResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	result, err := h.authRepository.Login(ctx, cmd.Email(), cmd.Password())
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	if !result.User.IsActive() {
		return nil, errs.NewBusinessRuleViolationError(RuleUserNotActive,
			fmt.Sprintf("account is %s", result.User.Status()))
	}

	return result, nil
}
