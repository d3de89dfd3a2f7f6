package pantry

import "errors"

// Domain-specific errors for the pantry package.
var (
	ErrInvalidPantryID            = errors.New("pantry has no id")
	ErrFetchFailed                = errors.New("failed to fetch pantries")
	ErrSaveFailed                 = errors.New("failed to save pantry")
	ErrUpdateFailed               = errors.New("failed to update pantry")
	ErrDeleteFailed               = errors.New("failed to delete pantry")
	ErrFailedToCreateSharedPantry = errors.New("failed to create shared pantry")
)
