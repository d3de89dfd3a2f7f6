package usecase

import (
	"context"
	"fmt"
	"sync"

	"mypantry/internal/model"
	"mypantry/internal/pantry"
	"mypantry/internal/record"
	"mypantry/internal/store"
)

// FetchPantries queries the private and shared partitions concurrently and
// joins both before returning. Either failure fails the call; the surviving
// partial result is discarded.
func (uc *implUseCase) FetchPantries(ctx context.Context, sc model.Scope) (pantry.PantriesOutput, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg                   sync.WaitGroup
		ownedRecs, guestRecs []record.Record
		ownedErr, guestErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		ownedRecs, ownedErr = uc.fetchOwned(ctx, sc)
		if ownedErr != nil {
			cancel()
		}
	}()
	go func() {
		defer wg.Done()
		guestRecs, guestErr = uc.fetchAccepted(ctx)
		if guestErr != nil {
			cancel()
		}
	}()
	wg.Wait()

	if ownedErr != nil {
		return pantry.PantriesOutput{}, fmt.Errorf("%w: %w", pantry.ErrFetchFailed, ownedErr)
	}
	if guestErr != nil {
		return pantry.PantriesOutput{}, fmt.Errorf("%w: %w", pantry.ErrFetchFailed, guestErr)
	}

	var out pantry.PantriesOutput
	seen := make(map[string]struct{})
	for _, rec := range append(ownedRecs, guestRecs...) {
		p, ok := record.PantryFromRecord(rec)
		if !ok {
			// Decode failures are recoverable: skip the record, keep the rest.
			uc.l.Warnf(ctx, "pantry usecase: skipping undecodable record %s", rec.ID)
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}

		if p.IsShared {
			out.Shared = append(out.Shared, p)
		} else {
			out.Private = append(out.Private, p)
		}
	}

	uc.l.Infof(ctx, "pantry usecase: fetched %d private and %d shared pantries for user %s",
		len(out.Private), len(out.Shared), sc.UserID)
	return out, nil
}

// fetchOwned reads the caller's pantries from the private partition: the
// root zone plus every named zone (shared pantries live in their own zone
// inside the owner's private database).
func (uc *implUseCase) fetchOwned(ctx context.Context, sc model.Scope) ([]record.Record, error) {
	recs, err := uc.store.Fetch(ctx, store.PartitionPrivate, store.Query{
		Type: record.TypePantry,
		Filters: []store.Filter{
			{Field: "ownerId", Value: record.String(sc.UserID)},
		},
	})
	if err != nil {
		return nil, err
	}

	zones, err := uc.store.ListZones(ctx, store.PartitionPrivate)
	if err != nil {
		return nil, err
	}
	for _, zone := range zones {
		zoneRecs, err := uc.store.Fetch(ctx, store.PartitionPrivate, store.Query{
			Type: record.TypePantry,
			Zone: zone,
		})
		if err != nil {
			return nil, err
		}
		recs = append(recs, zoneRecs...)
	}
	return recs, nil
}

// fetchAccepted reads pantries other owners have shared with the caller.
// The shared partition only ever contains accepted zones, so everything
// visible there belongs to the caller's view.
func (uc *implUseCase) fetchAccepted(ctx context.Context) ([]record.Record, error) {
	recs, err := uc.store.Fetch(ctx, store.PartitionShared, store.Query{
		Type: record.TypePantry,
	})
	if err != nil {
		return nil, err
	}

	zones, err := uc.store.ListZones(ctx, store.PartitionShared)
	if err != nil {
		return nil, err
	}
	for _, zone := range zones {
		zoneRecs, err := uc.store.Fetch(ctx, store.PartitionShared, store.Query{
			Type: record.TypePantry,
			Zone: zone,
		})
		if err != nil {
			return nil, err
		}
		recs = append(recs, zoneRecs...)
	}
	return recs, nil
}
