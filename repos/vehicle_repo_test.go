package repos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunakoch/auto-estetica-agenda/models"
	"github.com/brunakoch/auto-estetica-agenda/store"
)

func TestVehicleAddRequiresCustomer(t *testing.T) {
	s := setupTestStore(t)
	repo := NewVehicleRepo(s)

	_, err := repo.Add(context.Background(), models.Vehicle{Make: "Honda", Model: "Civic"})
	assert.ErrorIs(t, err, ErrMissingCustomer)
}

func TestVehicleAddThenGet(t *testing.T) {
	s := setupTestStore(t)
	repo := NewVehicleRepo(s)
	ctx := context.Background()

	created, err := repo.Add(ctx, models.Vehicle{
		CustomerID: "c-1",
		Make:       "Honda",
		Model:      "Civic",
		Year:       "2021",
		Plate:      "ABC1D23",
		Color:      "Prata",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestVehicleByCustomer(t *testing.T) {
	s := setupTestStore(t)
	repo := NewVehicleRepo(s)
	ctx := context.Background()

	_, err := repo.Add(ctx, models.Vehicle{CustomerID: "c-1", Make: "Fiat", Model: "Uno"})
	require.NoError(t, err)
	_, err = repo.Add(ctx, models.Vehicle{CustomerID: "c-2", Make: "VW", Model: "Gol"})
	require.NoError(t, err)

	vehicles, err := repo.ByCustomer(ctx, "c-1")
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Fiat", vehicles[0].Make)
}

func TestVehicleUpdateAndDelete(t *testing.T) {
	s := setupTestStore(t)
	repo := NewVehicleRepo(s)
	ctx := context.Background()

	created, err := repo.Add(ctx, models.Vehicle{CustomerID: "c-1", Make: "Fiat", Model: "Uno", Color: "Vermelho"})
	require.NoError(t, err)

	created.Color = "Azul"
	_, err = repo.Update(ctx, created)
	require.NoError(t, err)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Azul", got.Color)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.Get(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NoError(t, repo.Delete(ctx, created.ID))
}
