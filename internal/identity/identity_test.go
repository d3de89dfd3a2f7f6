package identity_test

import (
	"context"
	"errors"
	"testing"

	"mypantry/internal/identity"
)

func TestStaticProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("signed in", func(t *testing.T) {
		p := identity.NewStatic("alice")
		if !p.IsSignedIn(ctx) {
			t.Error("expected signed in")
		}
		userID, err := p.CurrentUserID(ctx)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if userID != "alice" {
			t.Errorf("userID = %q", userID)
		}
	})

	t.Run("signed out", func(t *testing.T) {
		p := identity.NewStatic("")
		if p.IsSignedIn(ctx) {
			t.Error("expected signed out")
		}
		_, err := p.CurrentUserID(ctx)
		if !errors.Is(err, identity.ErrNotSignedIn) {
			t.Errorf("expected ErrNotSignedIn, got %v", err)
		}
	})
}
