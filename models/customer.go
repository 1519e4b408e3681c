package models

// Customer represents a client of the shop
type Customer struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	// Vehicles live in their own table; the repository attaches them on read
	Vehicles []Vehicle `gorm:"-" json:"vehicles"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
