package sharing

import (
	"context"

	"mypantry/internal/model"
)

// Broker turns a private pantry into a collaboratively accessible one and
// manages the resulting share lifecycle. A pantry's sharing status only
// moves forward: private, zone ready, shared. A failed step leaves the
// pantry in its prior state; callers retry from there.
type Broker interface {
	// CreateSharedZone creates the pantry's dedicated zone and returns a
	// copy with IsShared set and the zone id filled in. The input pantry is
	// never mutated, and the returned copy is only marked shared after zone
	// creation has been acknowledged. Idempotent per pantry id.
	CreateSharedZone(ctx context.Context, p model.Pantry) (model.Pantry, error)

	// FetchOrCreateShare returns the zone's share handle, creating it on
	// first call. Calling twice never produces two competing shares.
	// Returns ErrZoneNotFound when the pantry has no zone.
	FetchOrCreateShare(ctx context.Context, p model.Pantry) (model.ShareHandle, error)

	// AcceptInvitation consumes an externally delivered share token and
	// binds the current user as a participant. Safe to run concurrently
	// with other broker operations.
	AcceptInvitation(ctx context.Context, token string) error

	// ListParticipants returns the identities bound to the pantry's share.
	ListParticipants(ctx context.Context, p model.Pantry) ([]model.Participant, error)

	// RemoveParticipant unbinds a user from the pantry's share.
	RemoveParticipant(ctx context.Context, userID string, p model.Pantry) error
}
