package model

import "time"

// AddressModel mirrors the 'addresses' table. The customer_id foreign key
// carries ON DELETE CASCADE so removing a customer removes its addresses.
type AddressModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	CustomerID  int64  `gorm:"not null;index:idx_addresses_customer"`
	AddressLine string `gorm:"type:text;not null"`
	City        string `gorm:"type:varchar(100);not null"`
	State       string `gorm:"type:varchar(100);not null"`
	PinCode     string `gorm:"type:varchar(10);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
