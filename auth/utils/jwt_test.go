package utils

import (
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

// signWithExpiry builds a token exactly like Generate but with an arbitrary
// expiry offset, so expiry behaviour can be tested without sleeping.
func signWithExpiry(t *testing.T, secret string, adminID uint, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := Claims{
		UserID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret)

	token, err := tm.Generate(42)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	adminID, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if adminID != 42 {
		t.Fatalf("expected admin id 42, got %d", adminID)
	}
}

func TestTokenManager_EmptySecret(t *testing.T) {
	tm := NewTokenManager("")
	if _, err := tm.Generate(1); err == nil {
		t.Fatal("expected error generating with empty secret")
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := NewTokenManager(testSecret).Generate(7)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := NewTokenManager("other-secret").Parse(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestTokenManager_Malformed(t *testing.T) {
	tm := NewTokenManager(testSecret)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := tm.Parse(token); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", token, err)
		}
	}
}

func TestTokenManager_Expiry(t *testing.T) {
	tm := NewTokenManager(testSecret)

	tests := []struct {
		name    string
		ttl     time.Duration
		wantErr error
	}{
		{"valid just before expiry", 59 * time.Minute, nil},
		{"expired just after expiry", -time.Minute, ErrTokenExpired},
		{"long expired", -61 * time.Minute, ErrTokenExpired},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token := signWithExpiry(t, testSecret, 9, tc.ttl)
			adminID, err := tm.Parse(token)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Parse: %v", err)
				}
				if adminID != 9 {
					t.Fatalf("expected admin id 9, got %d", adminID)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestTokenManager_MissingUserID(t *testing.T) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	if _, err := NewTokenManager(testSecret).Parse(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for missing user_id, got %v", err)
	}
}
