// Package response holds the JSON bodies written by the HTTP handlers.
package response

import (
	"moodify/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// MessageResponse is the body of every error and of plain acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse carries the sanitized account.
type UserResponse struct {
	Message string             `json:"message"`
	User    *entity.PublicUser `json:"user"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Message string             `json:"message"`
	Token   string             `json:"token"`
	User    *entity.PublicUser `json:"user"`
}

// Message writes {message} with the given status.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// User writes {message, user} with the given status.
func User(c echo.Context, statusCode int, message string, user *entity.PublicUser) error {
	return c.JSON(statusCode, UserResponse{Message: message, User: user})
}

// Login writes the login success body.
func Login(c echo.Context, statusCode int, token string, user *entity.PublicUser) error {
	return c.JSON(statusCode, LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}
