package middleware

import (
	"log/slog"
	"net/http"

	"crm/internal/delivery/http/response"
	domainerrors "crm/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

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

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Field-level validation errors carry per-field detail.
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.Error(c, validationErr.HTTPCode(), validationErr.Message(), validationErr.Fields())

		return
	}

	// Other application errors map straight to their status code. Internal
	// errors are logged with their cause and answered with the generic
	// message only.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(err, c)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.Message(), nil)

		return
	}

	// Echo's own errors: unknown routes, method mismatches, body limit.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if httpErr.Code == http.StatusNotFound {
			message = "Not found"
		}
		_ = response.Error(c, httpErr.Code, message, nil)

		return
	}

	// Anything else is an unexpected failure: log the cause, never leak it.
	m.logError(err, c)
	_ = response.Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message(), nil)
}

func (m *ErrorMiddleware) logError(err error, c echo.Context) {
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)
}
