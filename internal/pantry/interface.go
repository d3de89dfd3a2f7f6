package pantry

import (
	"context"

	"mypantry/internal/model"
)

// UseCase defines the business logic interface for the pantry domain.
type UseCase interface {
	// FetchPantries loads the caller's pantries from both partitions
	// concurrently and splits the result by sharing status. A failure in
	// either partition fails the whole call.
	FetchPantries(ctx context.Context, sc model.Scope) (PantriesOutput, error)

	// SavePantry creates or overwrites a pantry. Partition routing follows
	// the caller-supplied isShared because sharing is a creation-time
	// choice; ownership is stamped from the scope exactly once.
	SavePantry(ctx context.Context, sc model.Scope, p model.Pantry, isShared bool) (model.Pantry, error)

	// UpdatePantry saves changed fields. Partition routing follows the
	// pantry's own persisted IsShared flag, never a caller-supplied one.
	UpdatePantry(ctx context.Context, p model.Pantry) (model.Pantry, error)

	// DeletePantry removes the pantry record. Items are NOT cascaded; the
	// caller owns cleanup of the pantry's items.
	DeletePantry(ctx context.Context, p model.Pantry) error

	// CreateSharedPantry runs the full sharing workflow: dedicated zone,
	// record rewrite into that zone, share creation, share reference
	// persistence. Safe to retry after any intermediate failure.
	CreateSharedPantry(ctx context.Context, p model.Pantry) (model.SharingInfo, error)

	// AcceptShareInvitation consumes an externally delivered share token.
	AcceptShareInvitation(ctx context.Context, token string) error

	// ListParticipants returns the identities on a shared pantry's share.
	ListParticipants(ctx context.Context, p model.Pantry) ([]model.Participant, error)

	// RemoveParticipant unbinds a user from a shared pantry.
	RemoveParticipant(ctx context.Context, userID string, p model.Pantry) error
}

// PantriesOutput is the split fetch result: pantries the user keeps private
// and pantries that are shared (owned-and-shared or accepted from others).
type PantriesOutput struct {
	Private []model.Pantry
	Shared  []model.Pantry
}
