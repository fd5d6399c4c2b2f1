package models

import "fmt"

// Category classifies a product. It is stored by name, so the constant
// values are the persisted representation.
type Category string

const (
	CategoryUnknown    Category = "UNKNOWN"
	CategoryCloths     Category = "CLOTHS"
	CategoryFood       Category = "FOOD"
	CategoryHousewares Category = "HOUSEWARES"
	CategoryAutomotive Category = "AUTOMOTIVE"
	CategoryTools      Category = "TOOLS"
)

// Categories lists every valid category value.
func Categories() []Category {
	return []Category{
		CategoryUnknown,
		CategoryCloths,
		CategoryFood,
		CategoryHousewares,
		CategoryAutomotive,
		CategoryTools,
	}
}

// ParseCategory converts a stored or user-supplied name into a Category.
// Unknown names are a validation failure, not silently mapped to UNKNOWN.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", &DataValidationError{Message: fmt.Sprintf("invalid category: %q", name)}
}

func (c Category) String() string {
	return string(c)
}
