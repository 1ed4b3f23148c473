// Package auth issues and verifies the bearer tokens that identify users,
// and hashes the passwords that prove them.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shashiranjanraj/bazaar/config"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the lifetime of every issued token. Expiry is a hard
// boundary; there is no grace window on verification.
const TokenTTL = time.Hour

// ErrNoSecret is returned when no signing key is configured.
var ErrNoSecret = errors.New("auth: signing secret not configured")

// Claims holds the typed JWT payload. Only the user id is carried —
// never the email or password hash.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

// GenerateToken creates a signed HS256 token identifying the given user,
// expiring TokenTTL from now.
func GenerateToken(userID string) (string, error) {
	key := secret()
	if len(key) == 0 {
		return "", ErrNoSecret
	}

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// ValidateToken parses a token string and checks its signature and
// expiration. Malformed, tampered, and expired tokens all return an error.
func ValidateToken(t string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// HashPassword returns a bcrypt hash of the plain-text password.
// bcrypt salts per call, so hashing the same password twice yields two
// different values, both verifiable by CheckPassword.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
// A mismatch is reported as false, never as an error.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
