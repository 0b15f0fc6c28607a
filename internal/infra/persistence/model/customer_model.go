package model

import "time"

// CustomerModel mirrors the 'customers' table. The primary key is a
// PostgreSQL bigserial. City, state and pin_code are indexed for the
// filtered listing.
type CustomerModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	FirstName   string `gorm:"type:varchar(100);not null"`
	LastName    string `gorm:"type:varchar(100);not null"`
	PhoneNumber string `gorm:"type:varchar(15);not null"`
	City        string `gorm:"type:varchar(100);not null;index:idx_customers_city"`
	State       string `gorm:"type:varchar(100);not null;index:idx_customers_state"`
	PinCode     string `gorm:"type:varchar(10);not null;index:idx_customers_pin"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Addresses []*AddressModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
