package usecase

import (
	"context"
	"errors"
	"fmt"

	"mypantry/internal/model"
	"mypantry/internal/pantry"
	"mypantry/internal/record"
	"mypantry/internal/store"
)

// CreateSharedPantry runs the sharing workflow: dedicated zone, record
// rewrite into that zone, share fetch-or-create, share reference
// persistence. Every step is idempotent, so a retry after any failure picks
// up where the last attempt left off. The returned pantry is only ever
// marked shared once the corresponding store writes have been acknowledged.
func (uc *implUseCase) CreateSharedPantry(ctx context.Context, p model.Pantry) (model.SharingInfo, error) {
	if p.ID == "" {
		return model.SharingInfo{}, pantry.ErrInvalidPantryID
	}

	shared, err := uc.broker.CreateSharedZone(ctx, p)
	if err != nil {
		uc.l.Errorf(ctx, "pantry usecase: zone creation for %s failed: %v", p.ID, err)
		return model.SharingInfo{}, fmt.Errorf("%w: %w", pantry.ErrFailedToCreateSharedPantry, err)
	}

	// The record moves into the new zone of the owner's private database;
	// other users reach it through the zone's share.
	saved, err := uc.store.Save(ctx, store.PartitionPrivate, record.PantryToRecord(shared))
	if err != nil {
		uc.l.Errorf(ctx, "pantry usecase: saving shared record for %s failed: %v", p.ID, err)
		return model.SharingInfo{}, fmt.Errorf("%w: %w", pantry.ErrFailedToCreateSharedPantry, err)
	}
	savedPantry, ok := record.PantryFromRecord(saved)
	if !ok {
		return model.SharingInfo{}, fmt.Errorf("%w: stored record did not decode", pantry.ErrFailedToCreateSharedPantry)
	}

	// The zone-resident record supersedes the copy in the pantry's previous
	// zone; left behind, that copy would keep reporting the pantry private.
	// An already-deleted copy keeps retries idempotent.
	if p.Zone != shared.Zone {
		if err := uc.store.Delete(ctx, store.PartitionPrivate, p.ID, record.ZoneID(p.Zone)); err != nil && !errors.Is(err, store.ErrNotFound) {
			uc.l.Errorf(ctx, "pantry usecase: removing superseded record for %s failed: %v", p.ID, err)
			return model.SharingInfo{}, fmt.Errorf("%w: %w", pantry.ErrFailedToCreateSharedPantry, err)
		}
	}

	handle, err := uc.broker.FetchOrCreateShare(ctx, savedPantry)
	if err != nil {
		uc.l.Errorf(ctx, "pantry usecase: share creation for %s failed: %v", p.ID, err)
		return model.SharingInfo{}, fmt.Errorf("%w: %w", pantry.ErrFailedToCreateSharedPantry, err)
	}

	if savedPantry.ShareReferenceID != handle.ID {
		savedPantry.ShareReferenceID = handle.ID
		saved, err = uc.store.Save(ctx, store.PartitionPrivate, record.PantryToRecord(savedPantry))
		if err != nil {
			uc.l.Errorf(ctx, "pantry usecase: persisting share reference for %s failed: %v", p.ID, err)
			return model.SharingInfo{}, fmt.Errorf("%w: %w", pantry.ErrFailedToCreateSharedPantry, err)
		}
		if savedPantry, ok = record.PantryFromRecord(saved); !ok {
			return model.SharingInfo{}, fmt.Errorf("%w: stored record did not decode", pantry.ErrFailedToCreateSharedPantry)
		}
	}

	uc.l.Infof(ctx, "pantry usecase: pantry %s shared via zone %s", savedPantry.ID, savedPantry.Zone)
	return model.SharingInfo{Pantry: savedPantry, Share: handle}, nil
}

// AcceptShareInvitation consumes a share token delivered out of band.
func (uc *implUseCase) AcceptShareInvitation(ctx context.Context, token string) error {
	return uc.broker.AcceptInvitation(ctx, token)
}

// ListParticipants returns the identities bound to a shared pantry.
func (uc *implUseCase) ListParticipants(ctx context.Context, p model.Pantry) ([]model.Participant, error) {
	return uc.broker.ListParticipants(ctx, p)
}

// RemoveParticipant unbinds a user from a shared pantry.
func (uc *implUseCase) RemoveParticipant(ctx context.Context, userID string, p model.Pantry) error {
	return uc.broker.RemoveParticipant(ctx, userID, p)
}
