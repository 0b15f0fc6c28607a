package handler_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"crm/internal/delivery/http/middleware"
	"crm/internal/delivery/http/router"
	"crm/internal/delivery/http/router/handler"
	"crm/internal/delivery/http/validator"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
)

// stubCustomerUsecase delegates each operation to an optional function field.
type stubCustomerUsecase struct {
	createFn func(ctx context.Context, input *usecase.CreateCustomerInput) (*usecase.CustomerOutput, error)
	listFn   func(ctx context.Context, input *usecase.ListCustomersInput) (*usecase.ListCustomersOutput, error)
	getFn    func(ctx context.Context, id int64) (*usecase.CustomerDetailOutput, error)
	updateFn func(ctx context.Context, id int64, input *usecase.UpdateCustomerInput) (*usecase.CustomerOutput, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubCustomerUsecase) Create(ctx context.Context, input *usecase.CreateCustomerInput) (*usecase.CustomerOutput, error) {
	if s.createFn == nil {
		return nil, nil
	}

	return s.createFn(ctx, input)
}

func (s *stubCustomerUsecase) List(ctx context.Context, input *usecase.ListCustomersInput) (*usecase.ListCustomersOutput, error) {
	if s.listFn == nil {
		return nil, nil
	}

	return s.listFn(ctx, input)
}

func (s *stubCustomerUsecase) GetWithAddresses(ctx context.Context, id int64) (*usecase.CustomerDetailOutput, error) {
	if s.getFn == nil {
		return nil, nil
	}

	return s.getFn(ctx, id)
}

func (s *stubCustomerUsecase) Update(ctx context.Context, id int64, input *usecase.UpdateCustomerInput) (*usecase.CustomerOutput, error) {
	if s.updateFn == nil {
		return nil, nil
	}

	return s.updateFn(ctx, id, input)
}

func (s *stubCustomerUsecase) Delete(ctx context.Context, id int64) error {
	if s.deleteFn == nil {
		return nil
	}

	return s.deleteFn(ctx, id)
}

// stubAddressUsecase delegates each operation to an optional function field.
type stubAddressUsecase struct {
	createFn func(ctx context.Context, input *usecase.CreateAddressInput) (*usecase.AddressOutput, error)
	updateFn func(ctx context.Context, id int64, input *usecase.UpdateAddressInput) (*usecase.AddressOutput, error)
}

func (s *stubAddressUsecase) Create(ctx context.Context, input *usecase.CreateAddressInput) (*usecase.AddressOutput, error) {
	if s.createFn == nil {
		return nil, nil
	}

	return s.createFn(ctx, input)
}

func (s *stubAddressUsecase) Update(ctx context.Context, id int64, input *usecase.UpdateAddressInput) (*usecase.AddressOutput, error) {
	if s.updateFn == nil {
		return nil, nil
	}

	return s.updateFn(ctx, id, input)
}

// newTestServer assembles a fully routed echo instance backed by the given
// stubs, with the production validator and error handler in place.
func newTestServer(t *testing.T, customerUC usecase.CustomerUsecase, addressUC usecase.AddressUsecase) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := router.NewRouter(router.RouterParams{
		CustomerHandler: handler.NewCustomerHandler(customerUC, logger),
		AddressHandler:  handler.NewAddressHandler(addressUC, logger),
	})
	r.RegisterRoutes(e)

	return e
}
