// Package entity contains the core business objects of the project.
package entity

import "time"

// Address is a physical location owned by exactly one Customer.
// An address never outlives its customer and cannot be reassigned;
// deleting the customer removes all of its addresses.
type Address struct {
	ID          int64     // Surrogate key, assigned by the store on creation.
	CustomerID  int64     // The owning customer; must reference a live customer row.
	AddressLine string    // Street address line.
	City        string    // City of the address.
	State       string    // State of the address.
	PinCode     string    // Postal code, 4 to 10 characters.
	CreatedAt   time.Time // Timestamp of when this address was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
