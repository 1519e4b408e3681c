package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/brunakoch/auto-estetica-agenda/models"
	"github.com/brunakoch/auto-estetica-agenda/repos"
	"github.com/brunakoch/auto-estetica-agenda/stats"
	"github.com/brunakoch/auto-estetica-agenda/store"
)

func TestBuildDashboard(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Vehicle{}, &models.Service{}, &models.Appointment{}, &models.Quote{}, &models.QuoteItem{}))

	s := store.New(db)
	customers := repos.NewCustomerRepo(s)
	services := repos.NewServiceRepo(s)
	appointments := repos.NewAppointmentRepo(s)
	ctx := context.Background()

	customer, err := customers.Add(ctx, models.Customer{Name: "João Silva"})
	require.NoError(t, err)
	service, err := services.Add(ctx, models.Service{Name: "Lavagem completa", Price: 80, Duration: 60, Category: models.CategoryWashing})
	require.NoError(t, err)

	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	_, err = appointments.Add(ctx, models.Appointment{
		CustomerID: customer.ID,
		ServiceID:  service.ID,
		Date:       models.FormatDate(now.Add(2 * time.Hour)),
	})
	require.NoError(t, err)
	_, err = appointments.Add(ctx, models.Appointment{
		CustomerID: customer.ID,
		ServiceID:  service.ID,
		Date:       models.FormatDate(now.AddDate(0, 0, -1)),
	})
	require.NoError(t, err)

	d, err := buildDashboard(ctx, appointments, customers, services, now)
	require.NoError(t, err)

	assert.Equal(t, 1, d.TodayCount)
	assert.Equal(t, 80.0, d.TodayRevenue)
	assert.Equal(t, 160.0, d.MonthRevenue)
	require.Len(t, d.Upcoming, 1)
	assert.Equal(t, "João Silva", d.Upcoming[0].CustomerName)
}

func TestRenderDashboard(t *testing.T) {
	d := dashboard{
		TodayCount:   2,
		TodayRevenue: 130,
		MonthRevenue: 1250.5,
		Upcoming: []stats.EnrichedAppointment{
			{
				Appointment:     models.Appointment{Date: "2026-03-10T17:30:00Z"},
				CustomerName:    "João Silva",
				ServiceName:     "Polimento",
				ServiceDuration: 180,
			},
		},
	}

	out := renderDashboard(d, time.UTC)
	assert.Contains(t, out, "Agendamentos Hoje: 2")
	assert.Contains(t, out, "Faturamento do Dia: R$ 130.00")
	assert.Contains(t, out, "Faturamento do Mês: R$ 1250.50")
	assert.Contains(t, out, "10/03 17:30")
	assert.Contains(t, out, "João Silva")
}
