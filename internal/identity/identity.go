// Package identity is the narrow port to the platform account provider. The
// core treats the user identifier as an opaque string and only cares whether
// an account is available at all.
package identity

import (
	"context"
	"errors"
)

// ErrNotSignedIn is returned when no account identity is available.
var ErrNotSignedIn = errors.New("identity: no signed-in user")

// Provider supplies the caller's identity.
type Provider interface {
	CurrentUserID(ctx context.Context) (string, error)
	IsSignedIn(ctx context.Context) bool
}

type staticProvider struct {
	userID string
}

// NewStatic returns a provider pinned to a configured user id. An empty id
// behaves as signed-out.
func NewStatic(userID string) Provider {
	return &staticProvider{userID: userID}
}

func (p *staticProvider) CurrentUserID(ctx context.Context) (string, error) {
	if p.userID == "" {
		return "", ErrNotSignedIn
	}
	return p.userID, nil
}

func (p *staticProvider) IsSignedIn(ctx context.Context) bool {
	return p.userID != ""
}
