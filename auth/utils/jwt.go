package utils

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const TokenExpiry = time.Hour

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims carries the admin identity inside the signed token.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 tokens with a single signing key.
// The key is injected at construction and immutable for the manager's
// lifetime, so tests can supply a deterministic one.
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		expiry: TokenExpiry,
	}
}

// Generate signs a token for the given admin with a 1 hour absolute expiry.
func (tm *TokenManager) Generate(adminID uint) (string, error) {
	if len(tm.secret) == 0 {
		return "", errors.New("jwt secret is empty")
	}

	now := time.Now()
	claims := Claims{
		UserID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Parse validates a token and returns the admin ID it was issued for.
// Expired tokens are reported as ErrTokenExpired; anything else that fails
// validation (bad signature, malformed payload, wrong algorithm) comes back
// as ErrTokenInvalid.
func (tm *TokenManager) Parse(tokenStr string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return 0, ErrTokenInvalid
	}

	return claims.UserID, nil
}
