package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-42")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "user-42" {
		t.Errorf("expected user id round-trip, got %q", claims.UserID)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-42")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// Flip the last character of the signature segment.
	tampered := token[:len(token)-1]
	if token[len(token)-1] == 'A' {
		tampered += "B"
	} else {
		tampered += "A"
	}

	if _, err := ValidateToken(tampered); err == nil {
		t.Error("expected tampered token to be rejected")
	}
}

func TestMalformedTokenRejected(t *testing.T) {
	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ValidateToken(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	claims := Claims{
		UserID: "user-42",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := ValidateToken(expired); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	h1, err := HashPassword("abcdefgh")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("abcdefgh")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if h1 == h2 {
		t.Error("expected two hashes of the same password to differ")
	}
	if !CheckPassword(h1, "abcdefgh") || !CheckPassword(h2, "abcdefgh") {
		t.Error("expected both hashes to verify against the original password")
	}
	if CheckPassword(h1, "abcdefgx") {
		t.Error("expected a different password to fail verification")
	}
}
