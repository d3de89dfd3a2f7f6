package store

import "errors"

// Stable error kinds for the store boundary. Implementations wrap transport
// causes with these so callers can match with errors.Is.
var (
	ErrWriteFailed         = errors.New("store: write rejected by backend")
	ErrQueryFailed         = errors.New("store: query failed")
	ErrNotFound            = errors.New("store: record not found")
	ErrZoneCreateFailed    = errors.New("store: zone creation failed")
	ErrShareNotFound       = errors.New("store: zone has no share")
	ErrShareCreateFailed   = errors.New("store: share creation failed")
	ErrAcceptFailed        = errors.New("store: share accept rejected")
	ErrParticipantNotFound = errors.New("store: participant not found")
)
