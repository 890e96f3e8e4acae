package ports

import (
	"context"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/user"
)

// Auth repository failure codes. Use cases map each code to one fixed
// user-facing message; an unrecognized code falls back to a generic one.
const (
	AuthCodeInvalidCredentials = "INVALID_CREDENTIALS"
	AuthCodeEmailTaken         = "EMAIL_ALREADY_REGISTERED"
	AuthCodeDocumentTaken      = "DOCUMENT_ALREADY_REGISTERED"
	AuthCodePhoneTaken         = "PHONE_ALREADY_REGISTERED"
	AuthCodeTokenExpired       = "TOKEN_EXPIRED"
	AuthCodeTokenInvalid       = "TOKEN_INVALID"
)

// BearerTokenType is the token type carried by every issued token pair.
const BearerTokenType = "Bearer"

// Tokens is an issued access/refresh token pair.
type Tokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	TokenType    string
}

// AuthResult couples an authenticated user with freshly issued tokens.
type AuthResult struct {
	User   *user.User
	Tokens Tokens
}

// Registration is the validated data a new account is created from.
type Registration struct {
	Name           string
	Email          kernel.Email
	DocumentNumber kernel.DocumentNumber
	Phone          kernel.Phone
	Password       string
}

// AuthRepository is the opaque authentication capability the core consumes.
// Token issuance and refresh mechanics live behind this contract.
type AuthRepository interface {
	// Login authenticates a user by credentials and issues tokens.
	Login(ctx context.Context, email kernel.Email, password string) (*AuthResult, error)

	// Register creates a new account and issues tokens for it.
	Register(ctx context.Context, registration Registration) (*AuthResult, error)

	// RefreshToken exchanges a refresh token for a fresh token pair.
	RefreshToken(ctx context.Context, refreshToken string) (*Tokens, error)

	// Logout invalidates a refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// VerifyToken checks an access token and returns its user.
	VerifyToken(ctx context.Context, accessToken string) (*user.User, error)
}
