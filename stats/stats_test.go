package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunakoch/auto-estetica-agenda/models"
)

var saoPaulo = mustLoadLocation("America/Sao_Paulo")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func TestEnrichAppointments(t *testing.T) {
	customers := []models.Customer{{ID: "c-1", Name: "João Silva"}}
	services := []models.Service{{ID: "svc-1", Name: "Lavagem completa", Price: 80, Duration: 60, Category: models.CategoryWashing}}
	appointments := []models.Appointment{
		{ID: "a-1", CustomerID: "c-1", ServiceID: "svc-1", Date: models.FormatDate(time.Now())},
		{ID: "a-2", CustomerID: "ghost", ServiceID: "svc-1", Date: models.FormatDate(time.Now())},
		{ID: "a-3", CustomerID: "c-1", ServiceID: "ghost", Date: models.FormatDate(time.Now())},
	}

	enriched := EnrichAppointments(appointments, customers, services)
	require.Len(t, enriched, 3)

	assert.Equal(t, "João Silva", enriched[0].CustomerName)
	assert.Equal(t, "Lavagem completa", enriched[0].ServiceName)
	assert.Equal(t, 80.0, enriched[0].ServiceValue)
	assert.Equal(t, 60, enriched[0].ServiceDuration)

	assert.Equal(t, CustomerNotFound, enriched[1].CustomerName, "dangling customer renders a placeholder, not an error")
	assert.Equal(t, "Lavagem completa", enriched[1].ServiceName)

	assert.Equal(t, ServiceNotFound, enriched[2].ServiceName)
	assert.Zero(t, enriched[2].ServiceValue, "missing service contributes no value")
}

func TestEnrichAppointmentsEmptySnapshots(t *testing.T) {
	enriched := EnrichAppointments(nil, nil, nil)
	assert.Empty(t, enriched)
}

func TestCountTodayAndRevenue(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 0, 0, 0, saoPaulo)
	today := func(hour int) string {
		return models.FormatDate(time.Date(2026, time.March, 10, hour, 0, 0, 0, saoPaulo))
	}
	yesterday := models.FormatDate(time.Date(2026, time.March, 9, 10, 0, 0, 0, saoPaulo))

	customers := []models.Customer{{ID: "c-1", Name: "João"}}
	services := []models.Service{
		{ID: "svc-50", Name: "A", Price: 50, Duration: 30, Category: models.CategoryWashing},
		{ID: "svc-30", Name: "B", Price: 30, Duration: 30, Category: models.CategoryWashing},
		{ID: "svc-100", Name: "C", Price: 100, Duration: 30, Category: models.CategoryDetailing},
	}
	appointments := []models.Appointment{
		{ID: "a-1", CustomerID: "c-1", ServiceID: "svc-50", Date: today(9)},
		{ID: "a-2", CustomerID: "c-1", ServiceID: "svc-30", Date: today(11)},
		{ID: "a-3", CustomerID: "c-1", ServiceID: "missing", Date: today(14)}, // no service, value 0
		{ID: "a-4", CustomerID: "c-1", ServiceID: "svc-100", Date: yesterday},
	}

	enriched := EnrichAppointments(appointments, customers, services)

	assert.Equal(t, 3, CountToday(enriched, now))
	assert.Equal(t, 80.0, SumRevenue(enriched, SameDay(now)))
	assert.Equal(t, 180.0, SumRevenue(enriched, SameMonth(now)))
}

func TestTodayRespectsLocalCalendarDay(t *testing.T) {
	// 23:30 in São Paulo on March 10 is already March 11 in UTC. The stored
	// date is UTC but "today" follows the viewer's clock.
	now := time.Date(2026, time.March, 10, 22, 0, 0, 0, saoPaulo)
	lateEvening := models.FormatDate(time.Date(2026, time.March, 10, 23, 30, 0, 0, saoPaulo))

	services := []models.Service{{ID: "svc-1", Name: "A", Price: 50, Duration: 30, Category: models.CategoryWashing}}
	appointments := []models.Appointment{{ID: "a-1", CustomerID: "c-1", ServiceID: "svc-1", Date: lateEvening}}
	enriched := EnrichAppointments(appointments, nil, services)

	assert.Equal(t, 1, CountToday(enriched, now))
	assert.Equal(t, 50.0, SumRevenue(enriched, SameDay(now)))
}

func TestUnparsableDatesNeverMatch(t *testing.T) {
	services := []models.Service{{ID: "svc-1", Name: "A", Price: 50, Duration: 30, Category: models.CategoryWashing}}
	appointments := []models.Appointment{{ID: "a-1", CustomerID: "c-1", ServiceID: "svc-1", Date: "amanhã de manhã"}}
	enriched := EnrichAppointments(appointments, nil, services)

	now := time.Now()
	assert.Zero(t, CountToday(enriched, now))
	assert.Zero(t, SumRevenue(enriched, SameMonth(now)))
}

func TestUpcomingAppointments(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, saoPaulo)
	at := func(day, hour int) string {
		return models.FormatDate(time.Date(2026, time.March, day, hour, 0, 0, 0, saoPaulo))
	}

	appointments := []models.Appointment{
		{ID: "past", CustomerID: "c-1", ServiceID: "s", Date: at(10, 9), Status: models.AppointmentCompleted},
		{ID: "soon", CustomerID: "c-1", ServiceID: "s", Date: at(10, 14), Status: models.AppointmentScheduled},
		{ID: "later", CustomerID: "c-1", ServiceID: "s", Date: at(12, 9), Status: models.AppointmentScheduled},
		{ID: "cancelled", CustomerID: "c-1", ServiceID: "s", Date: at(11, 9), Status: models.AppointmentCancelled},
		{ID: "tomorrow", CustomerID: "c-1", ServiceID: "s", Date: at(11, 10), Status: models.AppointmentInProgress},
	}
	enriched := EnrichAppointments(appointments, nil, nil)

	upcoming := UpcomingAppointments(enriched, now, 2)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "soon", upcoming[0].ID)
	assert.Equal(t, "tomorrow", upcoming[1].ID)

	all := UpcomingAppointments(enriched, now, 0)
	assert.Len(t, all, 3, "zero limit means no limit; cancelled and past stay excluded")
}

func TestQuoteTotals(t *testing.T) {
	assert.Zero(t, ComputeQuoteTotal(nil))
	assert.Zero(t, ComputeQuoteTotal([]models.QuoteItem{}))

	total := ComputeQuoteTotal([]models.QuoteItem{
		{Price: 10, Quantity: 2},
		{Price: 5, Quantity: 1},
	})
	assert.Equal(t, 25.0, total)

	subtotal, discount, payable := QuoteTotals([]models.QuoteItem{
		{Price: 100, Quantity: 2, Discount: 30},
	})
	assert.Equal(t, 200.0, subtotal)
	assert.Equal(t, 30.0, discount)
	assert.Equal(t, 170.0, payable)
}

func TestEnrichmentIsPure(t *testing.T) {
	customers := []models.Customer{{ID: "c-1", Name: "João"}}
	services := []models.Service{{ID: "svc-1", Name: "A", Price: 50, Duration: 30, Category: models.CategoryWashing}}
	appointments := []models.Appointment{{ID: "a-1", CustomerID: "c-1", ServiceID: "svc-1", Date: models.FormatDate(time.Now())}}

	first := EnrichAppointments(appointments, customers, services)
	second := EnrichAppointments(appointments, customers, services)
	assert.Equal(t, first, second, "same inputs always yield the same outputs")
	assert.Equal(t, "c-1", appointments[0].CustomerID, "inputs are never mutated")
}
