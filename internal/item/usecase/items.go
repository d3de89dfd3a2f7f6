package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"mypantry/internal/item"
	"mypantry/internal/model"
	"mypantry/internal/record"
	"mypantry/internal/store"
)

// FetchItems returns the items of one pantry. The pantryId filter is pushed
// to the store; a defensive re-check keeps foreign-key integrity even
// against a backend that ignores predicates.
func (uc *implUseCase) FetchItems(ctx context.Context, loc item.Location, pantryID string) ([]model.Item, error) {
	if pantryID == "" {
		return nil, item.ErrPantryIDRequired
	}
	loc = normalize(loc)

	recs, err := uc.store.Fetch(ctx, loc.Partition, store.Query{
		Type: record.TypeItem,
		Zone: record.ZoneID(loc.Zone),
		Filters: []store.Filter{
			{Field: record.FieldPantryID, Value: record.String(pantryID)},
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "item usecase: fetch for pantry %s failed: %v", pantryID, err)
		return nil, fmt.Errorf("%w: %w", item.ErrFetchFailed, err)
	}

	items := make([]model.Item, 0, len(recs))
	for _, rec := range recs {
		it, ok := record.ItemFromRecord(rec)
		if !ok {
			uc.l.Warnf(ctx, "item usecase: skipping undecodable record %s", rec.ID)
			continue
		}
		if it.PantryID != pantryID {
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

// AddItem persists a new item into the given pantry.
func (uc *implUseCase) AddItem(ctx context.Context, loc item.Location, it model.Item, pantryID string) (model.Item, error) {
	if pantryID == "" {
		return model.Item{}, item.ErrPantryIDRequired
	}
	loc = normalize(loc)

	now := uc.now()
	it.ID = uuid.NewString()
	it.PantryID = pantryID
	it.DateAdded = now
	it.DateLastUpdated = now
	if it.Quantity < 0 {
		it.Quantity = 0
	}

	saved, err := uc.store.Save(ctx, loc.Partition, record.ItemToRecord(it, record.ZoneID(loc.Zone)))
	if err != nil {
		uc.l.Errorf(ctx, "item usecase: save of %s failed: %v", it.Name, err)
		return model.Item{}, fmt.Errorf("%w: %w", item.ErrSaveFailed, err)
	}

	savedItem, ok := record.ItemFromRecord(saved)
	if !ok {
		return model.Item{}, fmt.Errorf("%w: stored record did not decode", item.ErrSaveFailed)
	}

	uc.l.Infof(ctx, "item usecase: added item %s to pantry %s", savedItem.ID, pantryID)
	return savedItem, nil
}

// UpdateItem overwrites a persisted item. DateLastUpdated is always
// refreshed so it never falls behind DateAdded.
func (uc *implUseCase) UpdateItem(ctx context.Context, loc item.Location, it model.Item) (model.Item, error) {
	if it.ID == "" {
		return model.Item{}, item.ErrItemHasNoID
	}
	loc = normalize(loc)

	it.DateLastUpdated = uc.now()
	if it.DateAdded.IsZero() {
		it.DateAdded = it.DateLastUpdated
	}
	if it.DateLastUpdated.Before(it.DateAdded) {
		it.DateLastUpdated = it.DateAdded
	}
	if it.Quantity < 0 {
		it.Quantity = 0
	}

	saved, err := uc.store.Save(ctx, loc.Partition, record.ItemToRecord(it, record.ZoneID(loc.Zone)))
	if err != nil {
		uc.l.Errorf(ctx, "item usecase: update of %s failed: %v", it.ID, err)
		return model.Item{}, fmt.Errorf("%w: %w", item.ErrUpdateFailed, err)
	}

	updated, ok := record.ItemFromRecord(saved)
	if !ok {
		return model.Item{}, fmt.Errorf("%w: stored record did not decode", item.ErrUpdateFailed)
	}
	return updated, nil
}

// DeleteItem removes a persisted item. An already-absent record counts as a
// completed delete.
func (uc *implUseCase) DeleteItem(ctx context.Context, loc item.Location, it model.Item) error {
	if it.ID == "" {
		return item.ErrItemHasNoID
	}
	loc = normalize(loc)

	err := uc.store.Delete(ctx, loc.Partition, it.ID, record.ZoneID(loc.Zone))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		uc.l.Errorf(ctx, "item usecase: delete of %s failed: %v", it.ID, err)
		return fmt.Errorf("%w: %w", item.ErrDeleteFailed, err)
	}
	return nil
}

func normalize(loc item.Location) item.Location {
	if loc.Partition == "" {
		loc.Partition = store.PartitionPrivate
	}
	return loc
}
