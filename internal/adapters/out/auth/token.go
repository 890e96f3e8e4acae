package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenIssuer names the module in issued access tokens.
const tokenIssuer = "ecomove"

// accessTokenClaims is the HS256 payload of an access token. The subject is
// the user's numeric identifier.
type accessTokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type tokenService struct {
	secret    []byte
	accessTTL time.Duration
}

func newTokenService(secret []byte, accessTTL time.Duration) tokenService {
	return tokenService{secret: secret, accessTTL: accessTTL}
}

func (s tokenService) issue(userID int64, role string, now time.Time) (string, error) {
	claims := accessTokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// parse validates the signature and expiry and returns the subject user id.
func (s tokenService) parse(accessToken string) (int64, error) {
	var claims accessTokenClaims
	_, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(claims.Subject, 10, 64)
}
