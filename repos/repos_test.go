package repos

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/brunakoch/auto-estetica-agenda/models"
	"github.com/brunakoch/auto-estetica-agenda/store"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, _ := setupTestStoreDB(t)
	return s
}

// setupTestStoreDB also exposes the raw handle for tests that need to
// break the schema underneath the store.
func setupTestStoreDB(t *testing.T) (*store.Store, *gorm.DB) {
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
	return store.New(db), db
}
