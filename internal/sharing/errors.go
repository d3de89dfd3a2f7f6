package sharing

import "errors"

// Domain-specific errors for the sharing package.
var (
	ErrZoneNotFound        = errors.New("pantry has no sharing zone")
	ErrShareCreateFailed   = errors.New("failed to create share")
	ErrAcceptFailed        = errors.New("failed to accept share invitation")
	ErrParticipantNotFound = errors.New("participant not found")
)
