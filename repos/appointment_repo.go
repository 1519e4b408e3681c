package repos

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brunakoch/auto-estetica-agenda/models"
	"github.com/brunakoch/auto-estetica-agenda/store"
)

// AppointmentRepo manages calendar appointments. Foreign keys are not
// enforced here; form dropdowns are expected to offer only existing
// customers, vehicles and services.
type AppointmentRepo struct {
	store *store.Store
}

func NewAppointmentRepo(s *store.Store) *AppointmentRepo {
	return &AppointmentRepo{store: s}
}

func (r *AppointmentRepo) All(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.store.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentRepo) Get(ctx context.Context, id string) (models.Appointment, error) {
	var appointment models.Appointment
	if err := r.store.Get(ctx, &appointment, id); err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

func (r *AppointmentRepo) ByCustomer(ctx context.Context, customerID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.store.FindBy(ctx, &appointments, "customer_id", customerID); err != nil {
		return nil, err
	}
	return appointments, nil
}

// Add creates the appointment, defaulting its status to scheduled.
func (r *AppointmentRepo) Add(ctx context.Context, data models.Appointment) (models.Appointment, error) {
	if data.Status == "" {
		data.Status = models.AppointmentScheduled
	}
	if !data.Status.Valid() {
		return models.Appointment{}, fmt.Errorf("unknown appointment status %q", data.Status)
	}
	data.ID = uuid.NewString()
	if err := r.store.Insert(ctx, &data); err != nil {
		return models.Appointment{}, fmt.Errorf("add appointment: %w", err)
	}
	return data, nil
}

// Update replaces the full record.
func (r *AppointmentRepo) Update(ctx context.Context, appointment models.Appointment) (models.Appointment, error) {
	if !appointment.Status.Valid() {
		return models.Appointment{}, fmt.Errorf("unknown appointment status %q", appointment.Status)
	}
	if err := r.store.Put(ctx, &appointment); err != nil {
		return models.Appointment{}, fmt.Errorf("update appointment: %w", err)
	}
	return appointment, nil
}

func (r *AppointmentRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, &models.Appointment{}, id)
}
