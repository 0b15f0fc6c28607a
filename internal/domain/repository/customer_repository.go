// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/errors"
)

// ErrCustomerNotFound is a domain-specific error returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerFilter restricts a customer listing. Empty fields are ignored;
// supplied fields are combined with AND. City and State match as
// case-insensitive substrings, PinCode as a plain substring.
type CustomerFilter struct {
	City    string
	State   string
	PinCode string
}

// CustomerRepository defines the standard operations for customer persistence.
// The application layer depends on this interface, not the concrete implementation.
type CustomerRepository interface {
	// Create persists a new customer and fills in the store-assigned
	// ID and timestamps on the given entity.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves a single customer by ID, without addresses.
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)

	// FindByIDWithAddresses retrieves a customer together with all owned
	// addresses, ordered by creation time descending.
	FindByIDWithAddresses(ctx context.Context, id int64) (*entity.Customer, error)

	// List returns the customers matching the filter, ordered by creation
	// time descending, windowed by limit and offset.
	List(ctx context.Context, filter CustomerFilter, limit, offset int) ([]*entity.Customer, error)

	// Count returns the number of customers matching the filter, ignoring pagination.
	Count(ctx context.Context, filter CustomerFilter) (int64, error)

	// Update saves the full customer row and refreshes its updated timestamp.
	Update(ctx context.Context, customer *entity.Customer) error

	// Delete removes a customer; the store cascades the delete to its
	// addresses. Returns ErrCustomerNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
}
