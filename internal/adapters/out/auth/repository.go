package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/user"
	"ecomove/internal/core/ports"
	"ecomove/internal/pkg/errs"
)

// Config carries the token parameters for the auth repository.
type Config struct {
	Secret          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// GormAuthRepository implements AuthRepository over the users and
// refresh_tokens tables. Credential failures never reveal whether the e-mail
// exists: both unknown accounts and wrong passwords surface as
// INVALID_CREDENTIALS.
type GormAuthRepository struct {
	db         *gorm.DB
	tokens     tokenService
	refreshTTL time.Duration
}

// NewGormAuthRepository creates an auth repository backed by GORM.
func NewGormAuthRepository(db *gorm.DB, config Config) *GormAuthRepository {
	return &GormAuthRepository{
		db:         db,
		tokens:     newTokenService([]byte(config.Secret), config.AccessTokenTTL),
		refreshTTL: config.RefreshTokenTTL,
	}
}

// Login checks the credentials and issues a fresh token pair.
func (r *GormAuthRepository) Login(
	ctx context.Context,
	email kernel.Email,
	password string,
) (*ports.AuthResult, error) {
	var dto accountDTO
	err := r.db.WithContext(ctx).First(&dto, "email = ?", email.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewConflictError(ports.AuthCodeInvalidCredentials, "credentials do not match")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(dto.PasswordHash), []byte(password)) != nil {
		return nil, errs.NewConflictError(ports.AuthCodeInvalidCredentials, "credentials do not match")
	}

	return r.buildResult(ctx, dto)
}

// Register creates an account and issues a first token pair. Uniqueness of
// e-mail, document and phone is checked here so each collision gets its own
// code.
func (r *GormAuthRepository) Register(
	ctx context.Context,
	registration ports.Registration,
) (*ports.AuthResult, error) {
	uniqueChecks := []struct {
		column string
		value  string
		code   string
	}{
		{"email", registration.Email.Value(), ports.AuthCodeEmailTaken},
		{"document_number", registration.DocumentNumber.Value(), ports.AuthCodeDocumentTaken},
		{"phone", registration.Phone.Value(), ports.AuthCodePhoneTaken},
	}
	for _, check := range uniqueChecks {
		var count int64
		err := r.db.WithContext(ctx).
			Model(&accountDTO{}).
			Where(check.column+" = ?", check.value).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errs.NewConflictError(check.code, check.column+" is already registered")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(registration.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	dto := accountDTO{
		Name:             registration.Name,
		Email:            registration.Email.Value(),
		DocumentNumber:   registration.DocumentNumber.Value(),
		Phone:            registration.Phone.Value(),
		Role:             user.RoleUser.String(),
		Status:           user.StatusActive.String(),
		RegistrationDate: time.Now().UTC(),
		PasswordHash:     string(hash),
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return r.buildResult(ctx, dto)
}

// RefreshToken rotates a refresh token: the old one is spent, a new pair is
// issued.
func (r *GormAuthRepository) RefreshToken(ctx context.Context, refreshToken string) (*ports.Tokens, error) {
	var dto RefreshTokenDTO
	err := r.db.WithContext(ctx).First(&dto, "token = ?", refreshToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewConflictError(ports.AuthCodeTokenInvalid, "refresh token is not recognized")
		}
		return nil, err
	}

	if err = r.db.WithContext(ctx).Delete(&RefreshTokenDTO{}, "token = ?", refreshToken).Error; err != nil {
		return nil, err
	}

	if time.Now().UTC().After(dto.ExpiresAt) {
		return nil, errs.NewConflictError(ports.AuthCodeTokenExpired, "refresh token has expired")
	}

	var account accountDTO
	if err = r.db.WithContext(ctx).First(&account, "id = ?", dto.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewConflictError(ports.AuthCodeTokenInvalid, "refresh token is not recognized")
		}
		return nil, err
	}

	tokens, err := r.issueTokens(ctx, account)
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Logout revokes a refresh token. Revoking an unknown token is not an error.
func (r *GormAuthRepository) Logout(ctx context.Context, refreshToken string) error {
	return r.db.WithContext(ctx).Delete(&RefreshTokenDTO{}, "token = ?", refreshToken).Error
}

// VerifyToken validates an access token and loads its user.
func (r *GormAuthRepository) VerifyToken(ctx context.Context, accessToken string) (*user.User, error) {
	userID, err := r.tokens.parse(accessToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.NewConflictError(ports.AuthCodeTokenExpired, "access token has expired")
		}
		return nil, errs.NewConflictErrorWithCause(ports.AuthCodeTokenInvalid,
			"access token is not valid", err)
	}

	var dto accountDTO
	if err = r.db.WithContext(ctx).First(&dto, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewConflictError(ports.AuthCodeTokenInvalid, "access token is not valid")
		}
		return nil, err
	}

	return dto.toDomain()
}

func (r *GormAuthRepository) buildResult(ctx context.Context, dto accountDTO) (*ports.AuthResult, error) {
	account, err := dto.toDomain()
	if err != nil {
		return nil, err
	}

	tokens, err := r.issueTokens(ctx, dto)
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{User: account, Tokens: tokens}, nil
}

func (r *GormAuthRepository) issueTokens(ctx context.Context, dto accountDTO) (ports.Tokens, error) {
	now := time.Now().UTC()

	accessToken, err := r.tokens.issue(dto.ID, dto.Role, now)
	if err != nil {
		return ports.Tokens{}, err
	}

	refresh := RefreshTokenDTO{
		Token:     uuid.NewString(),
		UserID:    dto.ID,
		ExpiresAt: now.Add(r.refreshTTL),
	}
	if err = r.db.WithContext(ctx).Create(&refresh).Error; err != nil {
		return ports.Tokens{}, err
	}

	return ports.Tokens{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		ExpiresIn:    int64(r.tokens.accessTTL.Seconds()),
		TokenType:    ports.BearerTokenType,
	}, nil
}
