package broker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"mypantry/internal/model"
	"mypantry/internal/record"
	"mypantry/internal/sharing"
	"mypantry/internal/store"
	pkgLog "mypantry/pkg/log"
)

// ZonePrefix prefixes every pantry sharing zone id. The zone id is derived
// deterministically from the pantry id so retries and concurrent callers
// converge on the same zone.
const ZonePrefix = "SharedPantry-"

const (
	shareCacheSize = 128
	shareCacheTTL  = 5 * time.Minute
)

type implBroker struct {
	l          pkgLog.Logger
	store      store.Store
	shares     store.ShareStore
	shareCache *expirable.LRU[record.ZoneID, model.ShareHandle]
}

// New creates a sharing broker over the given store surfaces. The share
// cache only suppresses redundant round trips; the store stays the source
// of truth for idempotency.
func New(l pkgLog.Logger, st store.Store, shares store.ShareStore) sharing.Broker {
	return &implBroker{
		l:          l,
		store:      st,
		shares:     shares,
		shareCache: expirable.NewLRU[record.ZoneID, model.ShareHandle](shareCacheSize, nil, shareCacheTTL),
	}
}

// ZoneForPantry derives the dedicated sharing zone id for a pantry.
func ZoneForPantry(pantryID string) record.ZoneID {
	return record.ZoneID(ZonePrefix + pantryID)
}

func (b *implBroker) CreateSharedZone(ctx context.Context, p model.Pantry) (model.Pantry, error) {
	if p.ID == "" {
		return model.Pantry{}, fmt.Errorf("%w: pantry has no id", sharing.ErrZoneNotFound)
	}

	zone := ZoneForPantry(p.ID)
	if err := b.store.CreateZone(ctx, store.PartitionPrivate, zone); err != nil {
		b.l.Errorf(ctx, "sharing broker: create zone %s failed: %v", zone, err)
		return model.Pantry{}, err
	}

	// The flag flips only after the zone write is acknowledged.
	shared := p
	shared.IsShared = true
	shared.Zone = string(zone)

	b.l.Infof(ctx, "sharing broker: zone %s ready for pantry %s", zone, p.ID)
	return shared, nil
}

func (b *implBroker) FetchOrCreateShare(ctx context.Context, p model.Pantry) (model.ShareHandle, error) {
	if p.Zone == "" {
		return model.ShareHandle{}, fmt.Errorf("%w: pantry %s", sharing.ErrZoneNotFound, p.ID)
	}
	zone := record.ZoneID(p.Zone)

	if handle, ok := b.shareCache.Get(zone); ok {
		return handle, nil
	}

	handle, err := b.shares.FetchShare(ctx, zone)
	if err == nil {
		b.shareCache.Add(zone, handle)
		return handle, nil
	}
	if !errors.Is(err, store.ErrShareNotFound) {
		b.l.Errorf(ctx, "sharing broker: fetch share for zone %s failed: %v", zone, err)
		return model.ShareHandle{}, fmt.Errorf("%w: %w", sharing.ErrShareCreateFailed, err)
	}

	handle, err = b.shares.CreateShare(ctx, zone, p.Name)
	if err != nil {
		b.l.Errorf(ctx, "sharing broker: create share for zone %s failed: %v", zone, err)
		return model.ShareHandle{}, fmt.Errorf("%w: %w", sharing.ErrShareCreateFailed, err)
	}

	b.shareCache.Add(zone, handle)
	b.l.Infof(ctx, "sharing broker: created share %s for zone %s", handle.ID, zone)
	return handle, nil
}

func (b *implBroker) AcceptInvitation(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("%w: empty token", sharing.ErrAcceptFailed)
	}
	if err := b.shares.AcceptShare(ctx, token); err != nil {
		b.l.Errorf(ctx, "sharing broker: accept invitation failed: %v", err)
		return fmt.Errorf("%w: %w", sharing.ErrAcceptFailed, err)
	}
	b.l.Info(ctx, "sharing broker: invitation accepted")
	return nil
}

func (b *implBroker) ListParticipants(ctx context.Context, p model.Pantry) ([]model.Participant, error) {
	if p.Zone == "" {
		return nil, fmt.Errorf("%w: pantry %s", sharing.ErrZoneNotFound, p.ID)
	}

	participants, err := b.shares.ListParticipants(ctx, record.ZoneID(p.Zone))
	if err != nil {
		if errors.Is(err, store.ErrShareNotFound) {
			return nil, fmt.Errorf("%w: pantry %s", sharing.ErrZoneNotFound, p.ID)
		}
		return nil, err
	}
	return participants, nil
}

func (b *implBroker) RemoveParticipant(ctx context.Context, userID string, p model.Pantry) error {
	if p.Zone == "" {
		return fmt.Errorf("%w: pantry %s", sharing.ErrZoneNotFound, p.ID)
	}

	err := b.shares.RemoveParticipant(ctx, record.ZoneID(p.Zone), userID)
	if err != nil {
		if errors.Is(err, store.ErrParticipantNotFound) {
			return fmt.Errorf("%w: %s", sharing.ErrParticipantNotFound, userID)
		}
		return err
	}
	return nil
}
