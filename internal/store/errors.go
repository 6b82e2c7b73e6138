package store

import "errors"

// Sentinel errors for lookups that miss their target. Handlers translate
// these into client-visible not-found responses; everything else is treated
// as an internal persistence failure.
var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUserExists       = errors.New("user already exists")
)
