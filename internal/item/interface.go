package item

import (
	"context"

	"mypantry/internal/model"
	"mypantry/internal/store"
)

// UseCase defines the business logic interface for the item domain.
type UseCase interface {
	// FetchItems returns the items of one pantry, filtered by the pantryId
	// foreign key pushed down to the store as a predicate.
	FetchItems(ctx context.Context, loc Location, pantryID string) ([]model.Item, error)

	// AddItem persists a new item into the given pantry, assigning its id
	// and stamping both timestamps.
	AddItem(ctx context.Context, loc Location, it model.Item, pantryID string) (model.Item, error)

	// UpdateItem overwrites a persisted item, refreshing DateLastUpdated.
	UpdateItem(ctx context.Context, loc Location, it model.Item) (model.Item, error)

	// DeleteItem removes a persisted item. Deleting an absent item is not
	// an error.
	DeleteItem(ctx context.Context, loc Location, it model.Item) error
}

// Location addresses where a pantry's items live: which partition and, for
// shared pantries, which zone. The zero value is the private partition's
// root zone.
type Location struct {
	Partition store.Partition
	Zone      string
}

// LocationFor derives the item location from the owning pantry's state and
// the caller's identity: the owner keeps reaching a shared pantry through
// the private partition, everyone else goes through the shared one.
func LocationFor(p model.Pantry, sc model.Scope) Location {
	loc := Location{Partition: store.PartitionPrivate, Zone: p.Zone}
	if p.IsShared && p.Zone != "" && p.OwnerID != sc.UserID {
		loc.Partition = store.PartitionShared
	}
	return loc
}
