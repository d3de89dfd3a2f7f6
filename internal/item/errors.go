package item

import "errors"

// Domain-specific errors for the item package.
var (
	ErrPantryIDRequired = errors.New("item has no pantry id set")
	ErrItemHasNoID      = errors.New("item has no id")
	ErrFetchFailed      = errors.New("failed to fetch items")
	ErrSaveFailed       = errors.New("failed to save item")
	ErrUpdateFailed     = errors.New("failed to update item")
	ErrDeleteFailed     = errors.New("failed to delete item")
)
