// Package services holds the application flows between the HTTP
// controllers and the persistence collaborators.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shashiranjanraj/bazaar/app/models"
	"github.com/shashiranjanraj/bazaar/app/repositories"
	"github.com/shashiranjanraj/bazaar/pkg/auth"
)

var (
	// ErrEmailTaken means a registration attempt hit an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound means login was attempted for an unknown email.
	// Surfacing this distinctly from bad credentials leaks account
	// existence; a deliberate tradeoff carried from the original design.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials means the password did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserDirectory is the persistence collaborator for user records.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// AuthService orchestrates registration and login: directory lookup,
// password hashing/verification, and token issuance.
type AuthService struct {
	users UserDirectory
}

func NewAuthService(users UserDirectory) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new user and issues a bearer token for them.
// The returned user has its password hash stripped.
//
// Two concurrent registrations with the same email can both pass the
// existence check; the window is accepted, not mitigated, here.
func (s *AuthService) Register(ctx context.Context, email, password string) (models.User, string, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return models.User{}, "", ErrEmailTaken
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return models.User{}, "", fmt.Errorf("lookup email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user := models.User{Email: email, Password: hash}
	if err := s.users.Create(ctx, &user); err != nil {
		return models.User{}, "", fmt.Errorf("create user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID.Hex())
	if err != nil {
		return models.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	user.Password = ""
	return user, token, nil
}

// Login verifies credentials and issues a bearer token.
// The returned user has its password hash stripped.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.User{}, "", ErrUserNotFound
	}
	if err != nil {
		return models.User{}, "", fmt.Errorf("lookup email: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID.Hex())
	if err != nil {
		return models.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	user.Password = ""
	return user, token, nil
}
