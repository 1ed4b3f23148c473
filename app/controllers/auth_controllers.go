// Package controllers decodes requests, validates them, invokes the
// services, and writes envelope responses. All failures are converted to
// an envelope here; nothing propagates to the transport layer.
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shashiranjanraj/bazaar/app/services"
	"github.com/shashiranjanraj/bazaar/pkg/logger"
	"github.com/shashiranjanraj/bazaar/pkg/response"
	"github.com/shashiranjanraj/bazaar/pkg/validate"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type registerInput struct {
	Email                string `json:"email"                 validate:"required,email"`
	Password             string `json:"password"              validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"confirmed"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/users/register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var input registerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	if errs := validate.Struct(input); validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.service.Register(r.Context(), input.Email, input.Password)
	if errors.Is(err, services.ErrEmailTaken) {
		response.Error(w, http.StatusBadRequest, "Email already registered")
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("registration failed", "error", err)
		response.ServerError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("user registered", "user_id", user.ID.Hex())
	response.Created(w, "User registered successfully", map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// Login handles POST /api/users/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	if input.Email == "" || input.Password == "" {
		response.Error(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := c.service.Login(r.Context(), input.Email, input.Password)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		response.NotFound(w, "User not found")
		return
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Unauthorized(w, "Invalid credentials")
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("login failed", "error", err)
		response.ServerError(w, err)
		return
	}

	response.Success(w, "Login successful", map[string]interface{}{
		"user":  user,
		"token": token,
	})
}
