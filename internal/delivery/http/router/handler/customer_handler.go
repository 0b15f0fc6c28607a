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

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(c echo.Context) error {
	input := new(usecase.CreateCustomerInput)
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

	return response.Success(c, http.StatusCreated, output, "Customer created successfully")
}

// List handles GET /api/customers with optional city/state/pinCode filters
// and page/limit pagination.
func (h *CustomerHandler) List(c echo.Context) error {
	input := &usecase.ListCustomersInput{
		City:    c.QueryParam("city"),
		State:   c.QueryParam("state"),
		PinCode: c.QueryParam("pinCode"),
	}
	// Unparseable page/limit values fall back to the defaults.
	input.Page, _ = strconv.Atoi(c.QueryParam("page"))
	input.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, output)
}

// Get handles GET /api/customers/:id, returning the customer with all its addresses.
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetWithAddresses(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Customer retrieved successfully")
}

// Update handles PATCH /api/customers/:id; only firstName, lastName and
// phoneNumber are editable.
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}

	input := new(usecase.UpdateCustomerInput)
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

	return response.Success(c, http.StatusOK, output, "Customer updated successfully")
}

// Delete handles DELETE /api/customers/:id; the store cascades to addresses.
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Customer deleted successfully")
}

// customerID parses the :id path parameter. Parse failure is a distinct
// bad-request error, raised before any store access.
func customerID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrInvalidCustomerID.WrapMessage("unparseable customer id")
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
