package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase opens the record store: the local sqlite file by default,
// or PostgreSQL when DATABASE_URL is set. TranslateError is enabled so
// duplicate-key violations look the same on both backends.
func ConnectDatabase(cfg *Config) error {
	dialector := sqlite.Open(cfg.SQLitePath)
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established successfully")
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB replaces the database instance; tests use it to inject an
// in-memory database.
func SetDB(db *gorm.DB) {
	DB = db
}
