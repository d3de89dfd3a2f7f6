package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"mypantry/internal/model"
	"mypantry/internal/pantry"
	"mypantry/internal/record"
	"mypantry/internal/store"
)

// SavePantry creates or overwrites a pantry. The target partition follows
// the caller's isShared choice at creation time.
func (uc *implUseCase) SavePantry(ctx context.Context, sc model.Scope, p model.Pantry, isShared bool) (model.Pantry, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.OwnerID == "" {
		// Ownership is stamped once, from the authenticated identity.
		p.OwnerID = sc.UserID
	}
	p.IsShared = isShared

	saved, err := uc.store.Save(ctx, partitionFor(p), record.PantryToRecord(p))
	if err != nil {
		uc.l.Errorf(ctx, "pantry usecase: save of %s failed: %v", p.ID, err)
		return model.Pantry{}, fmt.Errorf("%w: %w", pantry.ErrSaveFailed, err)
	}

	savedPantry, ok := record.PantryFromRecord(saved)
	if !ok {
		return model.Pantry{}, fmt.Errorf("%w: stored record did not decode", pantry.ErrSaveFailed)
	}

	uc.l.Infof(ctx, "pantry usecase: saved pantry %s (shared=%v)", savedPantry.ID, isShared)
	return savedPantry, nil
}

// UpdatePantry saves changed fields. Routing follows the pantry's own
// persisted IsShared flag: a pantry's partition is a property of its state,
// not of the call site.
func (uc *implUseCase) UpdatePantry(ctx context.Context, p model.Pantry) (model.Pantry, error) {
	if p.ID == "" {
		return model.Pantry{}, pantry.ErrInvalidPantryID
	}

	saved, err := uc.store.Save(ctx, partitionFor(p), record.PantryToRecord(p))
	if err != nil {
		uc.l.Errorf(ctx, "pantry usecase: update of %s failed: %v", p.ID, err)
		return model.Pantry{}, fmt.Errorf("%w: %w", pantry.ErrUpdateFailed, err)
	}

	updated, ok := record.PantryFromRecord(saved)
	if !ok {
		return model.Pantry{}, fmt.Errorf("%w: stored record did not decode", pantry.ErrUpdateFailed)
	}
	return updated, nil
}

// DeletePantry removes the pantry record. The pantry's items are left in
// place; cascading cleanup is the caller's responsibility.
func (uc *implUseCase) DeletePantry(ctx context.Context, p model.Pantry) error {
	if p.ID == "" {
		return pantry.ErrInvalidPantryID
	}

	err := uc.store.Delete(ctx, partitionFor(p), p.ID, record.ZoneID(p.Zone))
	if err != nil {
		// An already-absent record is a completed delete.
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		uc.l.Errorf(ctx, "pantry usecase: delete of %s failed: %v", p.ID, err)
		return fmt.Errorf("%w: %w", pantry.ErrDeleteFailed, err)
	}
	return nil
}

// partitionFor routes by the entity's own sharing flag. Shared pantries the
// owner created still live in the private partition (inside their zone);
// only pantries without a zone of their own route to the shared partition
// when flagged shared.
func partitionFor(p model.Pantry) store.Partition {
	if p.IsShared && p.Zone == "" {
		return store.PartitionShared
	}
	return store.PartitionPrivate
}
