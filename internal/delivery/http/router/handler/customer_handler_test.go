package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domainerrors "crm/internal/domain/errors"
	"crm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerHandler_Create_Success(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	customerUC := &stubCustomerUsecase{
		createFn: func(ctx context.Context, input *usecase.CreateCustomerInput) (*usecase.CustomerOutput, error) {
			assert.Equal(t, "Asha", input.FirstName)
			assert.Equal(t, "9876543210", input.PhoneNumber)

			return &usecase.CustomerOutput{
				ID:          1,
				FirstName:   input.FirstName,
				LastName:    input.LastName,
				PhoneNumber: input.PhoneNumber,
				City:        input.City,
				State:       input.State,
				PinCode:     input.PinCode,
				CreatedAt:   now,
				UpdatedAt:   now,
			}, nil
		},
	}
	e := newTestServer(t, customerUC, &stubAddressUsecase{})

	body := `{
		"firstName": "Asha",
		"lastName": "Patel",
		"phoneNumber": "9876543210",
		"city": "Pune",
		"state": "Maharashtra",
		"pinCode": "411001"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Customer created successfully")
	assert.Contains(t, rec.Body.String(), `"id":1`)
	assert.Contains(t, rec.Body.String(), `"firstName":"Asha"`)
}

func TestCustomerHandler_Create_TrimsWhitespace(t *testing.T) {
	customerUC := &stubCustomerUsecase{
		createFn: func(ctx context.Context, input *usecase.CreateCustomerInput) (*usecase.CustomerOutput, error) {
			assert.Equal(t, "Asha", input.FirstName)
			assert.Equal(t, "Pune", input.City)

			return &usecase.CustomerOutput{ID: 1}, nil
		},
	}
	e := newTestServer(t, customerUC, &stubAddressUsecase{})

	body := `{
		"firstName": "  Asha  ",
		"lastName": "Patel",
		"phoneNumber": "9876543210",
		"city": " Pune ",
		"state": "Maharashtra",
		"pinCode": "411001"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCustomerHandler_Create_ValidationError(t *testing.T) {
	customerUC := &stubCustomerUsecase{
		createFn: func(ctx context.Context, input *usecase.CreateCustomerInput) (*usecase.CustomerOutput, error) {
			t.Fatal("usecase must not be called on validation failure")

			return nil, nil
		},
	}
	e := newTestServer(t, customerUC, &stubAddressUsecase{})

	// firstName is whitespace only, phone too short, pinCode too long.
	body := `{
		"firstName": "   ",
		"lastName": "Patel",
		"phoneNumber": "12345",
		"city": "Pune",
		"state": "Maharashtra",
		"pinCode": "123456789012345"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Validation error", resp.Message)
	assert.Contains(t, resp.Errors, "firstName")
	assert.Contains(t, resp.Errors, "phoneNumber")
	assert.Contains(t, resp.Errors, "pinCode")
	assert.Equal(t, "Phone Number must be at least 10 characters", resp.Errors["phoneNumber"])
}

func TestCustomerHandler_Create_InvalidBody(t *testing.T) {
	e := newTestServer(t, &stubCustomerUsecase{}, &stubAddressUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestCustomerHandler_List_Success(t *testing.T) {
	customerUC := &stubCustomerUsecase{
		listFn: func(ctx context.Context, input *usecase.ListCustomersInput) (*usecase.ListCustomersOutput, error) {
			assert.Equal(t, "Pune", input.City)
			assert.Equal(t, "411001", input.PinCode)
			assert.Equal(t, 2, input.Page)
			assert.Equal(t, 5, input.Limit)

			return &usecase.ListCustomersOutput{
				Data: []*usecase.CustomerOutput{{ID: 11, FirstName: "Asha"}},
				Pagination: usecase.Pagination{
					Page:       2,
					Limit:      5,
					Total:      6,
					TotalPages: 2,
				},
			}, nil
		},
	}
	e := newTestServer(t, customerUC, &stubAddressUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/customers?city=Pune&pinCode=411001&page=2&limit=5", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data       []map[string]any `json:"data"`
		Pagination map[string]any   `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.EqualValues(t, 2, resp.Pagination["page"])
	assert.EqualValues(t, 2, resp.Pagination["totalPages"])
}

func TestCustomerHandler_List_EmptyPageKeepsDataArray(t *testing.T) {
	customerUC := &stubCustomerUsecase{
		listFn: func(ctx context.Context, input *usecase.ListCustomersInput) (*usecase.ListCustomersOutput, error) {
			return &usecase.ListCustomersOutput{
				Data:       []*usecase.CustomerOutput{},
				Pagination: usecase.Pagination{Page: 9, Limit: 10, Total: 3, TotalPages: 1},
			}, nil
		},
	}
	e := newTestServer(t, customerUC, &stubAddressUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/customers?page=9", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestCustomerHandler_Get_Success(t *testing.T) {
	customerUC := &stubCustomerUsecase{
		getFn: func(ctx context.Context, id int64) (*usecase.CustomerDetailOutput, error) {
			assert.Equal(t, int64(7), id)

			return &usecase.CustomerDetailOutput{
				CustomerOutput: usecase.CustomerOutput{ID: 7, FirstName: "Asha"},
				Addresses:      []*usecase.AddressOutput{},
			}, nil
		},
	}
	e := newTestServer(t, customerUC, &stubAddressUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/customers/7", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"addresses":[]`)
}

func TestCustomerHandler_Get_InvalidID(t *testing.T) {
	e := newTestServer(t, &stubCustomerUsecase{}, &stubAddressUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/customers/abc", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid customer id")
}

func TestCustomerHandler_Get_NotFound(t *testing.T) {
	customerUC := &stubCustomerUsecase{
		getFn: func(ctx context.Context, id int64) (*usecase.CustomerDetailOutput, error) {
			return nil, errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
		},
	}
	e := newTestServer(t, customerUC, &stubAddressUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/customers/99", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Customer not found")
}

func TestCustomerHandler_Update_Success(t *testing.T) {
	customerUC := &stubCustomerUsecase{
		updateFn: func(ctx context.Context, id int64, input *usecase.UpdateCustomerInput) (*usecase.CustomerOutput, error) {
			assert.Equal(t, int64(7), id)
			require.NotNil(t, input.FirstName)
			assert.Equal(t, "Aisha", *input.FirstName)
			assert.Nil(t, input.LastName)

			return &usecase.CustomerOutput{ID: 7, FirstName: "Aisha"}, nil
		},
	}
	e := newTestServer(t, customerUC, &stubAddressUsecase{})

	req := httptest.NewRequest(http.MethodPatch, "/api/customers/7", strings.NewReader(`{"firstName":"Aisha"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Customer updated successfully")
}

func TestCustomerHandler_Update_NoFields(t *testing.T) {
	customerUC := &stubCustomerUsecase{
		updateFn: func(ctx context.Context, id int64, input *usecase.UpdateCustomerInput) (*usecase.CustomerOutput, error) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one field must be provided")
		},
	}
	e := newTestServer(t, customerUC, &stubAddressUsecase{})

	req := httptest.NewRequest(http.MethodPatch, "/api/customers/7", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation error")
}

func TestCustomerHandler_Delete_Success(t *testing.T) {
	customerUC := &stubCustomerUsecase{
		deleteFn: func(ctx context.Context, id int64) error {
			assert.Equal(t, int64(7), id)

			return nil
		},
	}
	e := newTestServer(t, customerUC, &stubAddressUsecase{})

	req := httptest.NewRequest(http.MethodDelete, "/api/customers/7", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Customer deleted successfully"}`, rec.Body.String())
}

func TestCustomerHandler_Delete_NotFound(t *testing.T) {
	customerUC := &stubCustomerUsecase{
		deleteFn: func(ctx context.Context, id int64) error {
			return errors.Wrap(domainerrors.ErrCustomerNotFound, "customer not found")
		},
	}
	e := newTestServer(t, customerUC, &stubAddressUsecase{})

	req := httptest.NewRequest(http.MethodDelete, "/api/customers/99", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Customer not found")
}

func TestUnknownRoute_NotFound(t *testing.T) {
	e := newTestServer(t, &stubCustomerUsecase{}, &stubAddressUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not found"}`, rec.Body.String())
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(t, &stubCustomerUsecase{}, &stubAddressUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
