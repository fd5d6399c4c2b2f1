package models

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRepo opens a fresh SQLite store in a per-test temp dir so every
// test starts from an empty table.
func newTestRepo(t *testing.T) *ProductsRepository {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Product{}))

	return NewProductsRepository(db)
}

var factoryNames = []string{
	"Hat", "Pants", "Shirt", "Apple", "Banana",
	"Pots", "Towels", "Ford", "Chevy", "Hammer", "Wrench",
}

// productFactory builds a randomized unsaved product.
func productFactory() *Product {
	categories := Categories()
	cents := rand.Intn(9950) + 50
	return &Product{
		Name:        factoryNames[rand.Intn(len(factoryNames))],
		Description: "A product for testing",
		Price:       decimal.NewFromInt(int64(cents)).Div(decimal.NewFromInt(100)),
		Available:   rand.Intn(2) == 0,
		Category:    categories[rand.Intn(len(categories))],
	}
}

// createBatch persists n factory products and returns them.
func createBatch(t *testing.T, repo *ProductsRepository, n int) []*Product {
	t.Helper()

	products := make([]*Product, n)
	for i := range products {
		products[i] = productFactory()
		require.NoError(t, repo.Create(products[i]))
	}
	return products
}
