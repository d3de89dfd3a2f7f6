package store

import (
	"context"

	"mypantry/internal/model"
	"mypantry/internal/record"
)

// Partition selects one of the two top-level record spaces. The CRUD surface
// is identical for both; partition is a parameter, never a separate
// interface.
type Partition string

const (
	PartitionPrivate Partition = "private"
	PartitionShared  Partition = "shared"
)

// Valid reports whether p names a known partition.
func (p Partition) Valid() bool {
	return p == PartitionPrivate || p == PartitionShared
}

// Filter is an equality predicate pushed down to the backend.
type Filter struct {
	Field string
	Value record.FieldValue
}

// Query selects records of one type, optionally scoped to a zone and
// narrowed by filters. A zero Zone means the partition's default zone.
type Query struct {
	Type    string
	Zone    record.ZoneID
	Filters []Filter
}

// Store is the CRUD + zone surface of the remote record store.
type Store interface {
	// Save upserts a record and returns the stored form.
	Save(ctx context.Context, p Partition, rec record.Record) (record.Record, error)

	// Fetch returns all records matching the query.
	Fetch(ctx context.Context, p Partition, q Query) ([]record.Record, error)

	// Delete removes a record by id. Returns ErrNotFound when absent;
	// callers may treat that as success.
	Delete(ctx context.Context, p Partition, recordID string, zone record.ZoneID) error

	// CreateZone creates a named zone. Creating an existing zone is a no-op
	// success.
	CreateZone(ctx context.Context, p Partition, zone record.ZoneID) error

	// ListZones returns the zone ids present in a partition.
	ListZones(ctx context.Context, p Partition) ([]record.ZoneID, error)
}

// ShareStore is the share/participant surface consumed by the sharing
// broker. Shares are keyed by zone: at most one share exists per zone.
type ShareStore interface {
	// CreateShare creates the share for a zone and returns its handle.
	CreateShare(ctx context.Context, zone record.ZoneID, title string) (model.ShareHandle, error)

	// FetchShare returns the existing share for a zone, ErrShareNotFound
	// when the zone has none.
	FetchShare(ctx context.Context, zone record.ZoneID) (model.ShareHandle, error)

	// AcceptShare binds the current user as a participant of the share the
	// token belongs to.
	AcceptShare(ctx context.Context, token string) error

	// ListParticipants returns the identities bound to a zone's share.
	ListParticipants(ctx context.Context, zone record.ZoneID) ([]model.Participant, error)

	// RemoveParticipant unbinds a user from a zone's share. Returns
	// ErrParticipantNotFound when the user is not a participant.
	RemoveParticipant(ctx context.Context, zone record.ZoneID, userID string) error
}
