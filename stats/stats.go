// Package stats turns raw entity snapshots into display-ready derived
// values: enriched appointments, dashboard counters and revenue sums, quote
// totals. Every function is pure and synchronous; nothing here touches the
// store, so results must be recomputed whenever an input snapshot changes.
package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brunakoch/auto-estetica-agenda/models"
)

// Placeholder names rendered for dangling references. These are display
// fallbacks, not errors.
const (
	CustomerNotFound = "Cliente não encontrado"
	ServiceNotFound  = "Serviço não encontrado"
)

// EnrichedAppointment is an appointment joined with its customer and
// service for display.
type EnrichedAppointment struct {
	models.Appointment
	CustomerName    string
	ServiceName     string
	ServiceValue    float64
	ServiceDuration int
}

// EnrichAppointments joins each appointment with the supplied customer and
// service snapshots. A dangling customer or service reference produces a
// placeholder name and a zero service value instead of an error.
func EnrichAppointments(appointments []models.Appointment, customers []models.Customer, services []models.Service) []EnrichedAppointment {
	customersByID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		customersByID[c.ID] = c
	}
	servicesByID := make(map[string]models.Service, len(services))
	for _, s := range services {
		servicesByID[s.ID] = s
	}

	enriched := make([]EnrichedAppointment, 0, len(appointments))
	for _, a := range appointments {
		e := EnrichedAppointment{
			Appointment:  a,
			CustomerName: CustomerNotFound,
			ServiceName:  ServiceNotFound,
		}
		if c, ok := customersByID[a.CustomerID]; ok {
			e.CustomerName = c.Name
		}
		if s, ok := servicesByID[a.ServiceID]; ok {
			e.ServiceName = s.Name
			e.ServiceValue = s.Price
			e.ServiceDuration = s.Duration
		}
		enriched = append(enriched, e)
	}
	return enriched
}

// DatePredicate reports whether an appointment date belongs to a period.
type DatePredicate func(time.Time) bool

// SameDay matches dates on now's calendar day, in now's location.
func SameDay(now time.Time) DatePredicate {
	return func(t time.Time) bool {
		y1, m1, d1 := now.Date()
		y2, m2, d2 := t.In(now.Location()).Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	}
}

// SameMonth matches dates in now's calendar month, in now's location.
func SameMonth(now time.Time) DatePredicate {
	return func(t time.Time) bool {
		local := t.In(now.Location())
		return now.Year() == local.Year() && now.Month() == local.Month()
	}
}

// CountToday counts appointments on now's calendar day. "Today" is defined
// by now's location at call time, not by a stored time zone.
func CountToday(enriched []EnrichedAppointment, now time.Time) int {
	today := SameDay(now)
	count := 0
	for _, e := range enriched {
		date, err := models.ParseDate(e.Date)
		if err != nil {
			continue
		}
		if today(date) {
			count++
		}
	}
	return count
}

// SumRevenue sums the service value of appointments whose date matches the
// predicate. A missing service contributes 0; an unparsable date never
// matches.
func SumRevenue(enriched []EnrichedAppointment, match DatePredicate) float64 {
	total := decimal.Zero
	for _, e := range enriched {
		date, err := models.ParseDate(e.Date)
		if err != nil || !match(date) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(e.ServiceValue))
	}
	return total.InexactFloat64()
}

// UpcomingAppointments returns the next non-cancelled appointments after
// now, soonest first, at most limit of them.
func UpcomingAppointments(enriched []EnrichedAppointment, now time.Time, limit int) []EnrichedAppointment {
	type dated struct {
		e    EnrichedAppointment
		when time.Time
	}
	upcoming := make([]dated, 0, len(enriched))
	for _, e := range enriched {
		if e.Status == models.AppointmentCancelled {
			continue
		}
		date, err := models.ParseDate(e.Date)
		if err != nil || !date.After(now) {
			continue
		}
		upcoming = append(upcoming, dated{e: e, when: date})
	}
	sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].when.Before(upcoming[j].when) })

	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	result := make([]EnrichedAppointment, len(upcoming))
	for i, d := range upcoming {
		result[i] = d.e
	}
	return result
}
