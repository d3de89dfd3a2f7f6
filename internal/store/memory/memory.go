// Package memory holds an in-process Store/ShareStore used by tests and as
// the local mode of cmd/api. It mirrors the remote backend's semantics:
// partitions, zones, zone-level deduplication, one share per zone.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"mypantry/internal/model"
	"mypantry/internal/record"
	"mypantry/internal/store"
)

type zoneKey struct {
	partition store.Partition
	zone      record.ZoneID
}

type share struct {
	handle       model.ShareHandle
	participants []model.Participant
}

// Store is an in-memory record store. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	records map[zoneKey]map[string]record.Record
	zones   map[store.Partition]map[record.ZoneID]struct{}
	shares  map[record.ZoneID]*share
	byToken map[string]record.ZoneID

	// CurrentUser is the identity bound by AcceptShare. Settable by tests.
	CurrentUser string

	// Failure hooks let tests inject backend rejections per operation.
	FailSave       error
	FailFetch      error
	FailDelete     error
	FailCreateZone error
	FailShare      error
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		records: make(map[zoneKey]map[string]record.Record),
		zones: map[store.Partition]map[record.ZoneID]struct{}{
			store.PartitionPrivate: {record.DefaultZone: {}},
			store.PartitionShared:  {record.DefaultZone: {}},
		},
		shares:  make(map[record.ZoneID]*share),
		byToken: make(map[string]record.ZoneID),
	}
}

func (s *Store) Save(ctx context.Context, p store.Partition, rec record.Record) (record.Record, error) {
	if s.FailSave != nil {
		return record.Record{}, fmt.Errorf("%w: %w", store.ErrWriteFailed, s.FailSave)
	}
	if rec.ID == "" {
		return record.Record{}, fmt.Errorf("%w: record has no id", store.ErrWriteFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := zoneKey{partition: p, zone: rec.Zone}
	if _, ok := s.zones[p][rec.Zone]; !ok {
		return record.Record{}, fmt.Errorf("%w: zone %q does not exist", store.ErrWriteFailed, rec.Zone)
	}
	if s.records[key] == nil {
		s.records[key] = make(map[string]record.Record)
	}
	s.records[key][rec.ID] = rec.Clone()
	return rec.Clone(), nil
}

func (s *Store) Fetch(ctx context.Context, p store.Partition, q store.Query) ([]record.Record, error) {
	if s.FailFetch != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrQueryFailed, s.FailFetch)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := s.records[zoneKey{partition: p, zone: q.Zone}]

	// A named zone in the shared partition holds records accepted from the
	// owner's private database; the backend serves them from there.
	if len(recs) == 0 && p == store.PartitionShared && q.Zone != record.DefaultZone {
		if _, accepted := s.zones[store.PartitionShared][q.Zone]; accepted {
			recs = s.records[zoneKey{partition: store.PartitionPrivate, zone: q.Zone}]
		}
	}

	var out []record.Record
	for _, rec := range recs {
		if rec.Type != q.Type {
			continue
		}
		if !matches(rec, q.Filters) {
			continue
		}
		out = append(out, rec.Clone())
	}
	return out, nil
}

func matches(rec record.Record, filters []store.Filter) bool {
	for _, f := range filters {
		got, ok := rec.Fields[f.Field]
		if !ok || got != f.Value {
			return false
		}
	}
	return true
}

func (s *Store) Delete(ctx context.Context, p store.Partition, recordID string, zone record.ZoneID) error {
	if s.FailDelete != nil {
		return fmt.Errorf("%w: %w", store.ErrWriteFailed, s.FailDelete)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := zoneKey{partition: p, zone: zone}
	if recs, ok := s.records[key]; ok {
		if _, ok := recs[recordID]; ok {
			delete(recs, recordID)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", store.ErrNotFound, recordID)
}

func (s *Store) CreateZone(ctx context.Context, p store.Partition, zone record.ZoneID) error {
	if s.FailCreateZone != nil {
		return fmt.Errorf("%w: %w", store.ErrZoneCreateFailed, s.FailCreateZone)
	}
	if zone == record.DefaultZone {
		return fmt.Errorf("%w: zone id is empty", store.ErrZoneCreateFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Creating an existing zone is a success; the backend dedupes by id.
	s.zones[p][zone] = struct{}{}
	return nil
}

func (s *Store) ListZones(ctx context.Context, p store.Partition) ([]record.ZoneID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []record.ZoneID
	for z := range s.zones[p] {
		if z != record.DefaultZone {
			out = append(out, z)
		}
	}
	return out, nil
}

func (s *Store) CreateShare(ctx context.Context, zone record.ZoneID, title string) (model.ShareHandle, error) {
	if s.FailShare != nil {
		return model.ShareHandle{}, fmt.Errorf("%w: %w", store.ErrShareCreateFailed, s.FailShare)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.shares[zone]; ok {
		return existing.handle, nil
	}

	handle := model.ShareHandle{
		ID:    uuid.NewString(),
		Zone:  string(zone),
		Token: uuid.NewString(),
		Title: title,
	}
	s.shares[zone] = &share{handle: handle}
	s.byToken[handle.Token] = zone
	return handle, nil
}

func (s *Store) FetchShare(ctx context.Context, zone record.ZoneID) (model.ShareHandle, error) {
	if s.FailShare != nil {
		return model.ShareHandle{}, fmt.Errorf("%w: %w", store.ErrQueryFailed, s.FailShare)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sh, ok := s.shares[zone]
	if !ok {
		return model.ShareHandle{}, fmt.Errorf("%w: zone %q", store.ErrShareNotFound, zone)
	}
	return sh.handle, nil
}

func (s *Store) AcceptShare(ctx context.Context, token string) error {
	if s.FailShare != nil {
		return fmt.Errorf("%w: %w", store.ErrAcceptFailed, s.FailShare)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	zone, ok := s.byToken[token]
	if !ok {
		return fmt.Errorf("%w: unknown token", store.ErrAcceptFailed)
	}

	sh := s.shares[zone]
	for _, p := range sh.participants {
		if p.UserID == s.CurrentUser {
			return nil
		}
	}
	sh.participants = append(sh.participants, model.Participant{
		UserID:     s.CurrentUser,
		Permission: model.PermissionReadWrite,
	})

	// Accepted zones surface through the shared partition.
	s.zones[store.PartitionShared][zone] = struct{}{}
	return nil
}

func (s *Store) ListParticipants(ctx context.Context, zone record.ZoneID) ([]model.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sh, ok := s.shares[zone]
	if !ok {
		return nil, fmt.Errorf("%w: zone %q", store.ErrShareNotFound, zone)
	}
	out := make([]model.Participant, len(sh.participants))
	copy(out, sh.participants)
	return out, nil
}

func (s *Store) RemoveParticipant(ctx context.Context, zone record.ZoneID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sh, ok := s.shares[zone]
	if !ok {
		return fmt.Errorf("%w: zone %q", store.ErrShareNotFound, zone)
	}
	for i, p := range sh.participants {
		if p.UserID == userID {
			sh.participants = append(sh.participants[:i], sh.participants[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", store.ErrParticipantNotFound, userID)
}
