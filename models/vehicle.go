package models

// Vehicle represents a car owned by a customer. CustomerID is required and
// treated as immutable after creation, though the store does not enforce it.
type Vehicle struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	CustomerID string `gorm:"not null;index;size:36" json:"customer_id"`
	Make       string `gorm:"not null" json:"make"`
	Model      string `gorm:"not null" json:"model"`
	Year       string `json:"year"`
	Plate      string `gorm:"index" json:"plate"`
	Color      string `json:"color"`
}

// TableName specifies the table name for the Vehicle model
func (Vehicle) TableName() string {
	return "vehicles"
}
