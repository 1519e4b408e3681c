package models

// AppointmentStatus is the canonical status of an appointment. Legacy data
// used Portuguese labels (agendado, confirmado, concluido, cancelado); see
// ParseAppointmentStatus for the accepted aliases.
type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "scheduled"
	AppointmentInProgress AppointmentStatus = "in_progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCancelled  AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the canonical statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentScheduled, AppointmentInProgress, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// ParseAppointmentStatus maps a stored status value, canonical or legacy
// Portuguese, to its canonical form. Unknown values are returned unchanged
// with ok=false so callers can decide how to surface them.
func ParseAppointmentStatus(raw string) (AppointmentStatus, bool) {
	switch raw {
	case "scheduled", "agendado":
		return AppointmentScheduled, true
	case "in_progress", "confirmado":
		return AppointmentInProgress, true
	case "completed", "concluido":
		return AppointmentCompleted, true
	case "cancelled", "cancelado":
		return AppointmentCancelled, true
	}
	return AppointmentStatus(raw), false
}

// Appointment represents a scheduled service on the calendar. The foreign
// keys are not enforced by the store; a deleted customer or service leaves a
// dangling reference that enrichment renders as a placeholder.
type Appointment struct {
	ID         string            `gorm:"primaryKey;size:36" json:"id"`
	CustomerID string            `gorm:"not null;index;size:36" json:"customer_id"`
	VehicleID  string            `gorm:"index;size:36" json:"vehicle_id"`
	ServiceID  string            `gorm:"not null;index;size:36" json:"service_id"`
	Date       string            `gorm:"not null;index" json:"date"` // RFC 3339, UTC
	Status     AppointmentStatus `gorm:"not null;index;size:20" json:"status"`
	Notes      string            `json:"notes,omitempty"`
	QuoteID    string            `gorm:"size:36" json:"quote_id,omitempty"` // originating quote, if any
}

// TableName specifies the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
