package models

// ServiceCategory classifies a catalog service
type ServiceCategory string

const (
	CategoryWashing   ServiceCategory = "washing"
	CategoryPolishing ServiceCategory = "polishing"
	CategoryCoating   ServiceCategory = "coating"
	CategoryDetailing ServiceCategory = "detailing"
	CategoryOther     ServiceCategory = "other"
)

// ServiceCategories lists every valid category, in display order.
func ServiceCategories() []ServiceCategory {
	return []ServiceCategory{
		CategoryWashing,
		CategoryPolishing,
		CategoryCoating,
		CategoryDetailing,
		CategoryOther,
	}
}

// Valid reports whether c is one of the known categories.
func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryWashing, CategoryPolishing, CategoryCoating, CategoryDetailing, CategoryOther:
		return true
	}
	return false
}

// Service represents an entry in the service catalog
type Service struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	Name        string          `gorm:"not null;index" json:"name"`
	Description string          `json:"description"`
	Price       float64         `gorm:"not null;check:price >= 0" json:"price"`
	Duration    int             `gorm:"not null;check:duration > 0" json:"duration"` // minutes
	Category    ServiceCategory `gorm:"not null;index;size:20" json:"category"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}
