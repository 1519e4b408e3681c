// Package repos wraps the entity store into typed per-entity operations:
// identifier assignment on add, full-record replace on update, and the
// customer→vehicle cascade on delete. Store failures propagate to the
// caller untouched.
package repos

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/brunakoch/auto-estetica-agenda/models"
	"github.com/brunakoch/auto-estetica-agenda/store"
)

// CustomerRepo manages customers and their owned vehicles.
type CustomerRepo struct {
	store *store.Store
}

func NewCustomerRepo(s *store.Store) *CustomerRepo {
	return &CustomerRepo{store: s}
}

// All returns every customer with its vehicles attached. The join runs on
// every read; it is not incrementally maintained.
func (r *CustomerRepo) All(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.store.All(ctx, &customers); err != nil {
		return nil, err
	}

	var vehicles []models.Vehicle
	if err := r.store.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	byOwner := make(map[string][]models.Vehicle, len(customers))
	for _, v := range vehicles {
		byOwner[v.CustomerID] = append(byOwner[v.CustomerID], v)
	}
	for i := range customers {
		customers[i].Vehicles = byOwner[customers[i].ID]
	}
	return customers, nil
}

// Get returns one customer with its vehicles attached.
func (r *CustomerRepo) Get(ctx context.Context, id string) (models.Customer, error) {
	var customer models.Customer
	if err := r.store.Get(ctx, &customer, id); err != nil {
		return models.Customer{}, err
	}
	if err := r.store.FindBy(ctx, &customer.Vehicles, "customer_id", id); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

// Add creates the customer and any embedded vehicles in one transaction,
// assigning fresh identifiers to all of them.
func (r *CustomerRepo) Add(ctx context.Context, data models.Customer) (models.Customer, error) {
	data.ID = uuid.NewString()
	for i := range data.Vehicles {
		data.Vehicles[i].ID = uuid.NewString()
		data.Vehicles[i].CustomerID = data.ID
	}

	err := r.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.Insert(ctx, &models.Customer{ID: data.ID, Name: data.Name, Email: data.Email, Phone: data.Phone}); err != nil {
			return err
		}
		for i := range data.Vehicles {
			if err := tx.Insert(ctx, &data.Vehicles[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Customer{}, fmt.Errorf("add customer: %w", err)
	}
	return data, nil
}

// Update replaces the customer row and its whole vehicle set. Callers must
// pass the complete record; there is no partial patch. Vehicles without an
// identifier get a fresh one, vehicles missing from the list are removed.
func (r *CustomerRepo) Update(ctx context.Context, customer models.Customer) (models.Customer, error) {
	for i := range customer.Vehicles {
		if customer.Vehicles[i].ID == "" {
			customer.Vehicles[i].ID = uuid.NewString()
		}
		customer.Vehicles[i].CustomerID = customer.ID
	}

	err := r.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.Put(ctx, &models.Customer{ID: customer.ID, Name: customer.Name, Email: customer.Email, Phone: customer.Phone}); err != nil {
			return err
		}
		if _, err := tx.DeleteBy(ctx, &models.Vehicle{}, "customer_id", customer.ID); err != nil {
			return err
		}
		for i := range customer.Vehicles {
			if err := tx.Insert(ctx, &customer.Vehicles[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Customer{}, fmt.Errorf("update customer: %w", err)
	}
	return customer, nil
}

// Delete removes the customer and every vehicle it owns in one transaction,
// so a failed cascade rolls back instead of orphaning vehicles.
// Appointments and quotes referencing the customer are left in place and
// render as placeholders on the next enrichment.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	var removed int64
	err := r.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.Delete(ctx, &models.Customer{}, id); err != nil {
			return err
		}
		n, err := tx.DeleteBy(ctx, &models.Vehicle{}, "customer_id", id)
		if err != nil {
			return fmt.Errorf("%w: %w", store.ErrPartialCascade, err)
		}
		removed = n
		return nil
	})
	if err != nil {
		zlog.Warn().Err(err).Str("customer_id", id).Msg("customer delete rolled back")
		return fmt.Errorf("delete customer: %w", err)
	}
	if removed > 0 {
		zlog.Debug().Str("customer_id", id).Int64("vehicles", removed).Msg("cascade deleted vehicles")
	}
	return nil
}
