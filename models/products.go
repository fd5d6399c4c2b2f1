package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a product in the catalog.
// An ID of zero means the product has not been persisted yet; the
// database assigns the key on the first Create.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"not null"`
	Description string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Available   bool            `gorm:"not null"`
	Category    Category        `gorm:"size:63;not null"`
}

func (p *Product) TableName() string {
	return "products"
}

func (p *Product) String() string {
	return fmt.Sprintf("<Product %s id=[%d]>", p.Name, p.ID)
}

// BeforeSave defaults an unset category so rows never persist with an
// empty classification.
func (p *Product) BeforeSave(*gorm.DB) error {
	if p.Category == "" {
		p.Category = CategoryUnknown
	}
	return nil
}

// Serialize converts the product into a plain mapping. The price is
// rendered as its decimal string so the value survives the round trip
// without floating-point drift.
func (p *Product) Serialize() map[string]any {
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.String(),
		"available":   p.Available,
		"category":    p.Category.String(),
	}
}

// Deserialize populates the product from a plain mapping, such as a
// decoded JSON body. Missing required fields, wrong types, an
// unparseable price, or an invalid category name all fail with a
// DataValidationError.
func (p *Product) Deserialize(data map[string]any) error {
	if data == nil {
		return &DataValidationError{Message: "invalid product: body contained bad or no data"}
	}

	name, err := stringField(data, "name")
	if err != nil {
		return err
	}
	description, err := stringField(data, "description")
	if err != nil {
		return err
	}

	rawAvailable, ok := data["available"]
	if !ok {
		return &DataValidationError{Message: "invalid product: missing available"}
	}
	available, ok := rawAvailable.(bool)
	if !ok {
		return &DataValidationError{
			Message: fmt.Sprintf("invalid type for boolean [available]: %T", rawAvailable),
		}
	}

	rawPrice, ok := data["price"]
	if !ok {
		return &DataValidationError{Message: "invalid product: missing price"}
	}
	price, err := coercePrice(rawPrice)
	if err != nil {
		return err
	}

	rawCategory, ok := data["category"]
	if !ok {
		return &DataValidationError{Message: "invalid product: missing category"}
	}
	categoryName, ok := rawCategory.(string)
	if !ok {
		return &DataValidationError{
			Message: fmt.Sprintf("invalid type for string [category]: %T", rawCategory),
		}
	}
	category, err := ParseCategory(categoryName)
	if err != nil {
		return err
	}

	// The id is optional: request bodies omit it, Serialize output has it.
	if rawID, ok := data["id"]; ok {
		id, err := coerceID(rawID)
		if err != nil {
			return err
		}
		p.ID = id
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.Available = available
	p.Category = category
	return nil
}

// ParsePrice coerces a textual amount into a decimal value. Query
// strings sometimes deliver prices wrapped in quotes or padded with
// spaces, so those are stripped before parsing.
func ParsePrice(s string) (decimal.Decimal, error) {
	cleaned := strings.Trim(s, ` "`)
	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, &DataValidationError{
			Message: fmt.Sprintf("invalid price: %q", s),
			Err:     err,
		}
	}
	return price, nil
}

func stringField(data map[string]any, key string) (string, error) {
	raw, ok := data[key]
	if !ok {
		return "", &DataValidationError{Message: "invalid product: missing " + key}
	}
	value, ok := raw.(string)
	if !ok {
		return "", &DataValidationError{
			Message: fmt.Sprintf("invalid type for string [%s]: %T", key, raw),
		}
	}
	return value, nil
}

func coercePrice(raw any) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		return ParsePrice(v)
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case json.Number:
		return ParsePrice(v.String())
	default:
		return decimal.Decimal{}, &DataValidationError{
			Message: fmt.Sprintf("invalid type for price: %T", raw),
		}
	}
}

func coerceID(raw any) (uint, error) {
	switch v := raw.(type) {
	case uint:
		return v, nil
	case int:
		if v < 0 {
			return 0, &DataValidationError{Message: fmt.Sprintf("invalid id: %d", v)}
		}
		return uint(v), nil
	case float64:
		if v < 0 || v != float64(uint(v)) {
			return 0, &DataValidationError{Message: fmt.Sprintf("invalid id: %v", v)}
		}
		return uint(v), nil
	default:
		return 0, &DataValidationError{
			Message: fmt.Sprintf("invalid type for id: %T", raw),
		}
	}
}
