// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/errors"
)

// ErrAddressNotFound is a domain-specific error returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the standard operations for address persistence.
type AddressRepository interface {
	// Create persists a new address and fills in the store-assigned
	// ID and timestamps on the given entity.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves a single address by ID.
	FindByID(ctx context.Context, id int64) (*entity.Address, error)

	// FindByCustomerID retrieves all addresses owned by a customer,
	// ordered by creation time descending.
	FindByCustomerID(ctx context.Context, customerID int64) ([]*entity.Address, error)

	// Update saves the full address row and refreshes its updated timestamp.
	Update(ctx context.Context, address *entity.Address) error
}
