package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the unified API envelope. Successful writes carry a message and
// the affected record; validation failures additionally carry the per-field
// errors. Empty members are omitted, so a delete response is just {message}.
type Response struct {
	Message string            `json:"message,omitempty"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Response{
		Message: message,
		Data:    data,
	})
}

// List writes a listing payload verbatim; the pagination envelope is part of
// the payload itself ({data, pagination}).
func List(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

// Message writes a body with only a message, used for deletes.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Response{Message: message})
}

// Error error response
func Error(c echo.Context, statusCode int, message string, fields map[string]string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Message: message,
		Errors:  fields,
	})
}

// BindingError binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message, nil)
}
