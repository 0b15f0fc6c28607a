// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Customer is the core entity of the system, representing one CRM contact.
// City, State and PinCode are set at creation and immutable afterwards;
// edits go through the partial-update fields only.
type Customer struct {
	ID          int64      // Surrogate key, assigned by the store on creation.
	FirstName   string     // The customer's given name.
	LastName    string     // The customer's family name.
	PhoneNumber string     // Contact phone number, 10 to 15 characters.
	City        string     // City recorded at creation time.
	State       string     // State recorded at creation time.
	PinCode     string     // Postal code, 4 to 10 characters.
	Addresses   []*Address // Owned addresses; populated only when explicitly loaded.
	CreatedAt   time.Time  // Timestamp of when this customer was created.
	UpdatedAt   time.Time  // Timestamp of the last modification.
}
