package catalog

import "errors"

var (
	// ErrNotFound is returned when a category or item is missing.
	ErrNotFound = errors.New("catalog entry not found")
	// ErrEmptyCatalog is returned when a document defines no categories.
	ErrEmptyCatalog = errors.New("catalog has no categories")
	// ErrInvalidPrice is returned for negative prices.
	ErrInvalidPrice = errors.New("catalog price must not be negative")
	// ErrServiceClosed is returned once Close has been called.
	ErrServiceClosed = errors.New("catalog service closed")
)
