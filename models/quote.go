package models

import "github.com/shopspring/decimal"

// QuoteStatus is the canonical status of a quote. Legacy data carried two
// overlapping Portuguese label sets (aberto/enviado/aprovado/rejeitado and
// aberto/aprovado/concluido); ParseQuoteStatus accepts both.
type QuoteStatus string

const (
	QuotePending   QuoteStatus = "pending"
	QuoteSent      QuoteStatus = "sent"
	QuoteApproved  QuoteStatus = "approved"
	QuoteRejected  QuoteStatus = "rejected"
	QuoteCompleted QuoteStatus = "completed"
)

// Valid reports whether s is one of the canonical statuses.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuotePending, QuoteSent, QuoteApproved, QuoteRejected, QuoteCompleted:
		return true
	}
	return false
}

// ParseQuoteStatus maps a stored status value, canonical or legacy
// Portuguese, to its canonical form.
func ParseQuoteStatus(raw string) (QuoteStatus, bool) {
	switch raw {
	case "pending", "aberto":
		return QuotePending, true
	case "sent", "enviado":
		return QuoteSent, true
	case "approved", "aprovado":
		return QuoteApproved, true
	case "rejected", "rejeitado":
		return QuoteRejected, true
	case "completed", "concluido":
		return QuoteCompleted, true
	}
	return QuoteStatus(raw), false
}

// QuoteItem is one line of a quote. Price is a snapshot of the service price
// at quote time; Quantity defaults to 1 and Discount is an absolute amount
// subtracted from the line.
type QuoteItem struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	QuoteID   string  `gorm:"not null;index;size:36" json:"quote_id"`
	ServiceID string  `gorm:"not null;size:36" json:"service_id"`
	Price     float64 `gorm:"not null" json:"price"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	Discount  float64 `gorm:"not null;default:0" json:"discount"`
}

// TableName specifies the table name for the QuoteItem model
func (QuoteItem) TableName() string {
	return "quote_items"
}

// Quote represents a price quote for a customer. Subtotal, Discount and
// Total are display caches: they are recomputed from Items on every write
// and again by the stats package before any financial use, never trusted.
type Quote struct {
	ID            string      `gorm:"primaryKey;size:36" json:"id"`
	CustomerID    string      `gorm:"not null;index;size:36" json:"customer_id"`
	VehicleID     string      `gorm:"index;size:36" json:"vehicle_id,omitempty"`
	Items         []QuoteItem `gorm:"-" json:"items"`
	Subtotal      float64     `gorm:"not null" json:"subtotal"`
	Discount      float64     `gorm:"not null" json:"discount"`
	Total         float64     `gorm:"not null" json:"total"`
	Date          string      `gorm:"not null;index" json:"date"` // RFC 3339, UTC
	ValidUntil    string      `json:"valid_until,omitempty"`
	Status        QuoteStatus `gorm:"not null;index;size:20" json:"status"`
	Notes         string      `json:"notes,omitempty"`
	AppointmentID string      `gorm:"size:36" json:"appointment_id,omitempty"` // resulting appointment, if any
}

// TableName specifies the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}

// Recalculate replaces the cached Subtotal, Discount and Total with values
// derived from Items. Arithmetic goes through decimal so repeated
// recomputation cannot drift.
func (q *Quote) Recalculate() {
	subtotal := decimal.Zero
	discount := decimal.Zero
	for _, item := range q.Items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		price := decimal.NewFromFloat(item.Price)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(qty))))
		discount = discount.Add(decimal.NewFromFloat(item.Discount))
	}
	q.Subtotal = subtotal.InexactFloat64()
	q.Discount = discount.InexactFloat64()
	q.Total = subtotal.Sub(discount).InexactFloat64()
}
