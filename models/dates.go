package models

import "time"

// Dates are persisted as UTC-normalized RFC 3339 strings. Conversion to the
// shop's local time zone happens only at the display boundary.

// FormatDate normalizes t to UTC and renders it in the stored format.
func FormatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseDate parses a stored date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
