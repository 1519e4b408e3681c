package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAppointmentStatus(t *testing.T) {
	tests := []struct {
		raw      string
		expected AppointmentStatus
		ok       bool
	}{
		{"scheduled", AppointmentScheduled, true},
		{"agendado", AppointmentScheduled, true},
		{"confirmado", AppointmentInProgress, true},
		{"in_progress", AppointmentInProgress, true},
		{"concluido", AppointmentCompleted, true},
		{"cancelado", AppointmentCancelled, true},
		{"whatever", AppointmentStatus("whatever"), false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseAppointmentStatus(tt.raw)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestParseQuoteStatus(t *testing.T) {
	tests := []struct {
		raw      string
		expected QuoteStatus
		ok       bool
	}{
		{"aberto", QuotePending, true},
		{"enviado", QuoteSent, true},
		{"aprovado", QuoteApproved, true},
		{"rejeitado", QuoteRejected, true},
		{"concluido", QuoteCompleted, true},
		{"approved", QuoteApproved, true},
		{"", QuoteStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseQuoteStatus(tt.raw)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestStatusLabelsAreTotal(t *testing.T) {
	for _, s := range []AppointmentStatus{AppointmentScheduled, AppointmentInProgress, AppointmentCompleted, AppointmentCancelled} {
		assert.True(t, s.Valid())
		assert.NotEqual(t, string(s), s.Label(), "canonical status %q should have a display label", s)
	}
	for _, s := range []QuoteStatus{QuotePending, QuoteSent, QuoteApproved, QuoteRejected, QuoteCompleted} {
		assert.True(t, s.Valid())
		assert.NotEqual(t, string(s), s.Label())
	}
	for _, c := range ServiceCategories() {
		assert.True(t, c.Valid())
		assert.NotEqual(t, string(c), c.Label())
	}
}
