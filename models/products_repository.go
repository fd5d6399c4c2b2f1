package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductsRepository owns all persistence operations for Product. The
// storage handle is injected; its lifecycle belongs to the caller.
type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// Create inserts the product as a new row and populates its ID. The ID
// is cleared first: the database assigns the key, never the caller.
// GORM runs the insert in its own transaction, so a failure leaves
// nothing committed.
func (r *ProductsRepository) Create(product *Product) error {
	product.ID = 0
	if err := r.db.Create(product).Error; err != nil {
		return &DataValidationError{Message: "create failed", Err: err}
	}
	return nil
}

// Update persists in-memory changes to the existing row keyed by the
// product's ID. Calling it on a never-created or already-deleted
// product is a validation failure, not a storage error.
func (r *ProductsRepository) Update(product *Product) error {
	if product.ID == 0 {
		return &DataValidationError{Message: "update called with empty ID field"}
	}
	if err := r.db.Save(product).Error; err != nil {
		return &DataValidationError{Message: "update failed", Err: err}
	}
	return nil
}

// Delete removes the row keyed by the product's ID. The in-memory
// product is stale afterwards; no further persistence calls are valid
// against it.
func (r *ProductsRepository) Delete(product *Product) error {
	if product.ID == 0 {
		return &DataValidationError{Message: "delete called with empty ID field"}
	}
	if err := r.db.Delete(product).Error; err != nil {
		return &DataValidationError{Message: "delete failed", Err: err}
	}
	return nil
}

// All returns every persisted product as a concrete slice. Order is
// whatever the store gives back.
func (r *ProductsRepository) All() ([]Product, error) {
	var products []Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Find returns the product with the given primary key, or
// ErrProductNotFound if no such row exists.
func (r *ProductsRepository) Find(id uint) (*Product, error) {
	var product Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}

// FindByName matches products whose name exactly equals the argument.
func (r *ProductsRepository) FindByName(name string) *ProductQuery {
	return r.query("name = ?", name)
}

// FindByAvailability matches products by their availability flag.
func (r *ProductsRepository) FindByAvailability(available bool) *ProductQuery {
	return r.query("available = ?", available)
}

// FindByCategory matches products by exact category. With no argument
// it matches the UNKNOWN category, mirroring the category default on
// the entity itself.
func (r *ProductsRepository) FindByCategory(category ...Category) *ProductQuery {
	c := CategoryUnknown
	if len(category) > 0 {
		c = category[0]
	}
	return r.query("category = ?", c)
}

// FindByPrice matches products by exact numeric price. Textual prices
// go through ParsePrice first.
func (r *ProductsRepository) FindByPrice(price decimal.Decimal) *ProductQuery {
	return r.query("price = ?", price)
}

func (r *ProductsRepository) query(cond string, args ...any) *ProductQuery {
	return &ProductQuery{db: r.db, cond: cond, args: args}
}

// ProductQuery is a lazily-evaluated finder result. It holds the
// condition only; nothing touches the database until Count or All is
// called, and each call builds a fresh statement so the two can be
// combined on one query value.
type ProductQuery struct {
	db   *gorm.DB
	cond string
	args []any
}

func (q *ProductQuery) stmt() *gorm.DB {
	return q.db.Model(&Product{}).Where(q.cond, q.args...)
}

// Count returns the number of matching products.
func (q *ProductQuery) Count() (int64, error) {
	var total int64
	if err := q.stmt().Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// All executes the query and returns the matching products.
func (q *ProductQuery) All() ([]Product, error) {
	var products []Product
	if err := q.stmt().Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
