package commands

import (
	"context"

	"ecomove/internal/core/ports"
)

// RegisterUserCommandHandler creates accounts through the auth capability.
// The command has already normalized and validated the registration fields;
// the handler delegates and translates repository codes into the fixed
// user-facing vocabulary.
type RegisterUserCommandHandler struct {
	authRepository ports.AuthRepository
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(authRepository ports.AuthRepository) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		authRepository: authRepository,
	}
}

// Handle processes the registration command and returns the created user
// with freshly issued tokens.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*ports.AuthResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	result, err := h.authRepository.Register(ctx, ports.Registration{
		Name:           cmd.Name(),
		Email:          cmd.Email(),
		DocumentNumber: cmd.DocumentNumber(),
		Phone:          cmd.Phone(),
		Password:       cmd.Password(),
	})
	if err != nil {
		return nil, translateRepositoryError(err)
	}

	return result, nil
}
