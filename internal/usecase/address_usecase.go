// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"strings"
	"time"
)

// AddressUsecase defines the interface for address-related business operations.
type AddressUsecase interface {
	Create(ctx context.Context, input *CreateAddressInput) (*AddressOutput, error)
	Update(ctx context.Context, id int64, input *UpdateAddressInput) (*AddressOutput, error)
}

// --- Input DTOs ---

// CreateAddressInput defines the data required to attach an address to a customer.
type CreateAddressInput struct {
	CustomerID  int64  `json:"customerId" validate:"required,gt=0"`
	AddressLine string `json:"addressLine" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state" validate:"required"`
	PinCode     string `json:"pinCode" validate:"required,min=4,max=10"`
}

// Normalize trims surrounding whitespace so "required" means non-empty after trimming.
func (in *CreateAddressInput) Normalize() {
	in.AddressLine = strings.TrimSpace(in.AddressLine)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.PinCode = strings.TrimSpace(in.PinCode)
}

// UpdateAddressInput defines the editable subset of an address.
// The owning customer cannot change; a nil field means "leave untouched".
type UpdateAddressInput struct {
	AddressLine *string `json:"addressLine" validate:"omitempty,min=1"`
	City        *string `json:"city" validate:"omitempty,min=1"`
	State       *string `json:"state" validate:"omitempty,min=1"`
	PinCode     *string `json:"pinCode" validate:"omitempty,min=4,max=10"`
}

// Normalize trims surrounding whitespace on the supplied fields.
func (in *UpdateAddressInput) Normalize() {
	trimPtr(in.AddressLine)
	trimPtr(in.City)
	trimPtr(in.State)
	trimPtr(in.PinCode)
}

// HasFields reports whether at least one recognized field was supplied.
func (in *UpdateAddressInput) HasFields() bool {
	return in.AddressLine != nil || in.City != nil || in.State != nil || in.PinCode != nil
}

// --- Output DTOs ---

// AddressOutput is the API representation of an address record.
type AddressOutput struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customerId"`
	AddressLine string    `json:"addressLine"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	PinCode     string    `json:"pinCode"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
