package repos

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brunakoch/auto-estetica-agenda/models"
	"github.com/brunakoch/auto-estetica-agenda/store"
)

// ServiceRepo manages the service catalog.
type ServiceRepo struct {
	store *store.Store
}

func NewServiceRepo(s *store.Store) *ServiceRepo {
	return &ServiceRepo{store: s}
}

func (r *ServiceRepo) All(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.store.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceRepo) Get(ctx context.Context, id string) (models.Service, error) {
	var service models.Service
	if err := r.store.Get(ctx, &service, id); err != nil {
		return models.Service{}, err
	}
	return service, nil
}

func (r *ServiceRepo) Add(ctx context.Context, data models.Service) (models.Service, error) {
	if err := validateService(data); err != nil {
		return models.Service{}, err
	}
	data.ID = uuid.NewString()
	if err := r.store.Insert(ctx, &data); err != nil {
		return models.Service{}, fmt.Errorf("add service: %w", err)
	}
	return data, nil
}

func (r *ServiceRepo) Update(ctx context.Context, service models.Service) (models.Service, error) {
	if err := validateService(service); err != nil {
		return models.Service{}, err
	}
	if err := r.store.Put(ctx, &service); err != nil {
		return models.Service{}, fmt.Errorf("update service: %w", err)
	}
	return service, nil
}

// Delete removes a catalog entry. Appointments and quote items that
// reference it keep their snapshot and render a placeholder name.
func (r *ServiceRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, &models.Service{}, id)
}

func validateService(s models.Service) error {
	if s.Name == "" {
		return fmt.Errorf("service requires a name")
	}
	if s.Price < 0 {
		return fmt.Errorf("service price must not be negative")
	}
	if s.Duration <= 0 {
		return fmt.Errorf("service duration must be positive")
	}
	if !s.Category.Valid() {
		return fmt.Errorf("unknown service category %q", s.Category)
	}
	return nil
}
