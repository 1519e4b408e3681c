package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/brunakoch/auto-estetica-agenda/models"
	"github.com/brunakoch/auto-estetica-agenda/store"
)

// ErrMissingCustomer rejects a vehicle without an owner.
var ErrMissingCustomer = errors.New("vehicle requires a customer id")

// VehicleRepo manages vehicles independently of their owning customer.
type VehicleRepo struct {
	store *store.Store
}

func NewVehicleRepo(s *store.Store) *VehicleRepo {
	return &VehicleRepo{store: s}
}

func (r *VehicleRepo) All(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := r.store.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// ByCustomer returns the vehicles owned by one customer.
func (r *VehicleRepo) ByCustomer(ctx context.Context, customerID string) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := r.store.FindBy(ctx, &vehicles, "customer_id", customerID); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepo) Get(ctx context.Context, id string) (models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.store.Get(ctx, &vehicle, id); err != nil {
		return models.Vehicle{}, err
	}
	return vehicle, nil
}

func (r *VehicleRepo) Add(ctx context.Context, data models.Vehicle) (models.Vehicle, error) {
	if data.CustomerID == "" {
		return models.Vehicle{}, ErrMissingCustomer
	}
	data.ID = uuid.NewString()
	if err := r.store.Insert(ctx, &data); err != nil {
		return models.Vehicle{}, fmt.Errorf("add vehicle: %w", err)
	}
	return data, nil
}

func (r *VehicleRepo) Update(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	if vehicle.CustomerID == "" {
		return models.Vehicle{}, ErrMissingCustomer
	}
	if err := r.store.Put(ctx, &vehicle); err != nil {
		return models.Vehicle{}, fmt.Errorf("update vehicle: %w", err)
	}
	return vehicle, nil
}

func (r *VehicleRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, &models.Vehicle{}, id)
}
