package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/brunakoch/auto-estetica-agenda/config"
	"github.com/brunakoch/auto-estetica-agenda/livequery"
	"github.com/brunakoch/auto-estetica-agenda/models"
	"github.com/brunakoch/auto-estetica-agenda/repos"
	"github.com/brunakoch/auto-estetica-agenda/stats"
	"github.com/brunakoch/auto-estetica-agenda/store"
)

// dashboard is the live snapshot printed to the console.
type dashboard struct {
	TodayCount   int
	TodayRevenue float64
	MonthRevenue float64
	Upcoming     []stats.EnrichedAppointment
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	if err := config.ConnectDatabase(cfg); err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect to database")
	}
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Vehicle{},
		&models.Service{},
		&models.Appointment{},
		&models.Quote{},
		&models.QuoteItem{},
	); err != nil {
		zlog.Fatal().Err(err).Msg("failed to migrate database")
	}
	zlog.Info().Msg("database migration completed")

	s := store.New(db)
	customers := repos.NewCustomerRepo(s)
	services := repos.NewServiceRepo(s)
	appointments := repos.NewAppointmentRepo(s)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loc := cfg.Location()
	sub := livequery.Watch(ctx, s.Notifier(), func(ctx context.Context) (dashboard, error) {
		return buildDashboard(ctx, appointments, customers, services, time.Now().In(loc))
	}, "appointments", "customers", "services")
	defer sub.Close()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case r := <-sub.Updates():
			if r.Err != nil {
				zlog.Error().Err(r.Err).Msg("dashboard query failed")
				continue
			}
			fmt.Print(renderDashboard(r.Value, loc))
		case <-quit:
			return
		}
	}
}

// buildDashboard reads fresh snapshots and derives the dashboard numbers.
func buildDashboard(ctx context.Context, appointments *repos.AppointmentRepo, customers *repos.CustomerRepo, services *repos.ServiceRepo, now time.Time) (dashboard, error) {
	appts, err := appointments.All(ctx)
	if err != nil {
		return dashboard{}, err
	}
	custs, err := customers.All(ctx)
	if err != nil {
		return dashboard{}, err
	}
	svcs, err := services.All(ctx)
	if err != nil {
		return dashboard{}, err
	}

	enriched := stats.EnrichAppointments(appts, custs, svcs)
	return dashboard{
		TodayCount:   stats.CountToday(enriched, now),
		TodayRevenue: stats.SumRevenue(enriched, stats.SameDay(now)),
		MonthRevenue: stats.SumRevenue(enriched, stats.SameMonth(now)),
		Upcoming:     stats.UpcomingAppointments(enriched, now, 5),
	}, nil
}

func renderDashboard(d dashboard, loc *time.Location) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Agendamentos Hoje: %d\n", d.TodayCount)
	fmt.Fprintf(&b, "Faturamento do Dia: R$ %.2f\n", d.TodayRevenue)
	fmt.Fprintf(&b, "Faturamento do Mês: R$ %.2f\n", d.MonthRevenue)
	if len(d.Upcoming) > 0 {
		b.WriteString("Próximos Agendamentos:\n")
		for _, e := range d.Upcoming {
			when := e.Date
			if ts, err := models.ParseDate(e.Date); err == nil {
				when = ts.In(loc).Format("02/01 15:04")
			}
			fmt.Fprintf(&b, "  %s  %s, %s (%dmin)\n", when, e.CustomerName, e.ServiceName, e.ServiceDuration)
		}
	}
	return b.String()
}
