// Package session tracks which identity is signed in. It is the only place
// that reads the ambient currentUser key; everything downstream receives the
// identity as a parameter.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/marcus/basket/internal/kv"
)

const currentUserKey = "currentUser"

// ErrEmptyIdentity is returned when signing in with a blank name.
var ErrEmptyIdentity = errors.New("identity must not be empty")

// CurrentUser returns the signed-in identity, or "" when nobody is signed in.
func CurrentUser(ctx context.Context, store kv.Store) (string, error) {
	v, err := store.Get(ctx, currentUserKey)
	if errors.Is(err, kv.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read current user: %w", err)
	}
	return v, nil
}

// Resolve picks the identity for one invocation: an explicit override wins
// over the persisted current user.
func Resolve(ctx context.Context, store kv.Store, override string) (string, error) {
	if o := strings.TrimSpace(override); o != "" {
		return o, nil
	}
	return CurrentUser(ctx, store)
}

// SignIn persists identity as the current user.
func SignIn(ctx context.Context, store kv.Store, identity string) error {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return ErrEmptyIdentity
	}
	if err := store.Set(ctx, currentUserKey, identity); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	return nil
}

// SignOut clears the current user. Signing out twice is not an error.
func SignOut(ctx context.Context, store kv.Store) error {
	if err := store.Delete(ctx, currentUserKey); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}
