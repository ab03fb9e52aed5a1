// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "moodify/internal/delivery/context"
	"moodify/internal/delivery/http/response"
	domainerrors "moodify/internal/domain/errors"
	"moodify/internal/errors"
	"moodify/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler holds dependencies for account-related handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Signup handles the account registration request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidInput.WithCause(err)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.uc.Signup(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "User registered successfully")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidCredentials.WithCause(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Login(c, http.StatusOK, output.Token, output.User)
}

// Me returns the account behind the bearer token.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrTokenInvalid)
	}

	user, err := h.uc.Me(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.User(c, http.StatusOK, "Authenticated", user)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Message(c, http.StatusOK, "ok")
}
