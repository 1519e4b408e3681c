package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/brunakoch/auto-estetica-agenda/models"
	"github.com/brunakoch/auto-estetica-agenda/store"
)

// OpenStore opens a fresh in-memory database with every table migrated,
// wrapped in a Store. Each call is fully isolated; nothing touches the
// developer's local agenda.db.
func OpenStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Vehicle{},
		&models.Service{},
		&models.Appointment{},
		&models.Quote{},
		&models.QuoteItem{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return store.New(db)
}
