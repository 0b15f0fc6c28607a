// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"strings"
	"time"
)

// Customer listing pagination limits.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// CustomerUsecase defines the interface for customer-related business operations.
type CustomerUsecase interface {
	Create(ctx context.Context, input *CreateCustomerInput) (*CustomerOutput, error)
	List(ctx context.Context, input *ListCustomersInput) (*ListCustomersOutput, error)
	GetWithAddresses(ctx context.Context, id int64) (*CustomerDetailOutput, error)
	Update(ctx context.Context, id int64, input *UpdateCustomerInput) (*CustomerOutput, error)
	Delete(ctx context.Context, id int64) error
}

// --- Input DTOs ---

// CreateCustomerInput defines the data required to create a customer.
type CreateCustomerInput struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=10,max=15"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state" validate:"required"`
	PinCode     string `json:"pinCode" validate:"required,min=4,max=10"`
}

// Normalize trims surrounding whitespace so "required" means non-empty after trimming.
func (in *CreateCustomerInput) Normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.PinCode = strings.TrimSpace(in.PinCode)
}

// UpdateCustomerInput defines the editable subset of a customer.
// Only firstName, lastName and phoneNumber may change after creation;
// a nil field means "leave untouched". Unknown JSON fields are dropped
// by decoding, never treated as errors.
type UpdateCustomerInput struct {
	FirstName   *string `json:"firstName" validate:"omitempty,min=1"`
	LastName    *string `json:"lastName" validate:"omitempty,min=1"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,min=10,max=15"`
}

// Normalize trims surrounding whitespace on the supplied fields.
func (in *UpdateCustomerInput) Normalize() {
	trimPtr(in.FirstName)
	trimPtr(in.LastName)
	trimPtr(in.PhoneNumber)
}

// HasFields reports whether at least one recognized field was supplied.
func (in *UpdateCustomerInput) HasFields() bool {
	return in.FirstName != nil || in.LastName != nil || in.PhoneNumber != nil
}

// ListCustomersInput carries the optional listing filters and pagination request.
type ListCustomersInput struct {
	City    string
	State   string
	PinCode string
	Page    int
	Limit   int
}

// Normalize trims the filters and clamps pagination: page is floored at 1,
// limit defaults to 10 and is clamped to [1, 50].
func (in *ListCustomersInput) Normalize() {
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.PinCode = strings.TrimSpace(in.PinCode)

	if in.Page < DefaultPage {
		in.Page = DefaultPage
	}
	if in.Limit <= 0 {
		in.Limit = DefaultLimit
	}
	if in.Limit > MaxLimit {
		in.Limit = MaxLimit
	}
}

// --- Output DTOs ---

// CustomerOutput is the API representation of a customer record.
type CustomerOutput struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	PinCode     string    `json:"pinCode"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CustomerDetailOutput is a customer together with all owned addresses.
// Addresses is always an array in the response, never null.
type CustomerDetailOutput struct {
	CustomerOutput
	Addresses []*AddressOutput `json:"addresses"`
}

// Pagination describes the window of a listing response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ListCustomersOutput is one page of customers plus the pagination envelope.
type ListCustomersOutput struct {
	Data       []*CustomerOutput `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
