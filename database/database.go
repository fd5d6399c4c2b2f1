package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/acmeshop/catalog/models"
)

// Open connects to the database named by the URL. Postgres serves
// deployments; sqlite:// covers local work and tests.
func Open(databaseURL string) (*gorm.DB, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://"):
		return gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	case strings.HasPrefix(databaseURL, "sqlite://"):
		path := strings.TrimPrefix(databaseURL, "sqlite://")
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database URL: %s", databaseURL)
	}
}

// Migrate creates or updates the schema for every entity in the model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}
