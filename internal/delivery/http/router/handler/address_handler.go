// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"crm/internal/delivery/http/response"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler holds dependencies for address-related handlers.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles POST /api/addresses. The target customer must exist;
// a missing customer is a 404, not a validation failure.
func (h *AddressHandler) Create(c echo.Context) error {
	input := new(usecase.CreateAddressInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "Invalid request body")
	}

	input.Normalize()
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Address added successfully")
}

// Update handles PATCH /api/addresses/:id. The owning customer cannot change.
func (h *AddressHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return domainerrors.ErrInvalidAddressID.WrapMessage("unparseable address id")
	}

	input := new(usecase.UpdateAddressInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "Invalid request body")
	}

	input.Normalize()
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Address updated successfully")
}
