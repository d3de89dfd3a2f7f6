package model

import "time"

// Status is the stock state of an item. Codes form a closed set; the record
// codec rejects anything outside it.
type Status int

const (
	StatusInStock Status = iota
	StatusOutOfStock
	StatusLowStock
	StatusInactive
)

// Valid reports whether s is one of the known status codes.
func (s Status) Valid() bool {
	return s >= StatusInStock && s <= StatusInactive
}

func (s Status) String() string {
	switch s {
	case StatusInStock:
		return "inStock"
	case StatusOutOfStock:
		return "outOfStock"
	case StatusLowStock:
		return "lowStock"
	case StatusInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// Item is a single tracked product. Every item belongs to exactly one pantry
// and is never migrated between pantries.
type Item struct {
	ID              string
	Name            string
	Quantity        int
	QuantityDesired *int
	Barcode         *string
	Favorite        bool
	CustomContent1  *string
	CustomContent2  *string
	CustomContent3  *string
	DateAdded       time.Time
	DateLastUpdated time.Time
	ExpireDate      *time.Time
	Note            *string
	PantryID        string
	Status          Status
}
