package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "moodify/internal/delivery/context"
	"moodify/internal/delivery/http/response"
	domainerrors "moodify/internal/domain/errors"
	"moodify/internal/errors"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// Only the user-facing message is written; causes stay in the logs.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := m.resolve(err)
	if status >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Request failed",
			slog.Int("status", status),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
			slog.Any("error", err),
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = response.Message(c, status, message)
	}
	if err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

func (m *ErrorMiddleware) resolve(err error) (int, string) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode(), appErr.Message()
	}

	// Echo's own errors: 404, 405, 413 from the body limit, CORS rejections.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, internalErrorMessage
		}
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			return httpErr.Code, msg
		}
		if httpErr.Message != nil {
			return httpErr.Code, fmt.Sprint(httpErr.Message)
		}

		return httpErr.Code, http.StatusText(httpErr.Code)
	}

	return http.StatusInternalServerError, internalErrorMessage
}
