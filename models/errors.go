package models

import "errors"

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// DataValidationError is the single error kind for persistence and
// validation failures in this package: underlying storage errors during
// Create/Update/Delete, the empty-ID precondition, and malformed input
// to Deserialize. Callers detect it with errors.As.
type DataValidationError struct {
	Message string
	Err     error
}

func (e *DataValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DataValidationError) Unwrap() error {
	return e.Err
}
