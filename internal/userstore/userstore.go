// Package userstore persists each identity's shopping lists as one JSON value
// in the key-value store.
package userstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/marcus/basket/internal/kv"
	"github.com/marcus/basket/internal/models"
)

const (
	keyPrefix = "lists:"
	// fallbackKey is shared by every session with no identity.
	fallbackKey = keyPrefix + "default"
)

// KeyFor returns the storage key holding identity's lists.
func KeyFor(identity string) string {
	if identity == "" {
		return fallbackKey
	}
	return keyPrefix + identity
}

// Store reads and writes per-identity lists.
type Store struct {
	kv kv.Store
}

// New wraps a key-value store.
func New(store kv.Store) *Store {
	return &Store{kv: store}
}

// Load returns identity's lists. Missing or malformed stored data yields an
// empty slice; only storage read failures are returned as errors.
func (s *Store) Load(ctx context.Context, identity string) ([]models.ShoppingList, error) {
	key := KeyFor(identity)
	if identity == "" {
		slog.Debug("userstore: no identity, using fallback key", "key", key)
	}

	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return []models.ShoppingList{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load lists: %w", err)
	}

	var lists []models.ShoppingList
	if err := json.Unmarshal([]byte(raw), &lists); err != nil {
		slog.Warn("userstore: stored lists unreadable, treating as empty", "key", key, "err", err)
		return []models.ShoppingList{}, nil
	}
	if lists == nil {
		lists = []models.ShoppingList{}
	}
	return lists, nil
}

// Save overwrites identity's lists with a single key write.
func (s *Store) Save(ctx context.Context, identity string, lists []models.ShoppingList) error {
	if lists == nil {
		lists = []models.ShoppingList{}
	}
	data, err := json.Marshal(lists)
	if err != nil {
		return fmt.Errorf("encode lists: %w", err)
	}
	if err := s.kv.Set(ctx, KeyFor(identity), string(data)); err != nil {
		return fmt.Errorf("save lists: %w", err)
	}
	return nil
}

// Clear removes all of identity's lists. Clearing an empty store is a no-op.
func (s *Store) Clear(ctx context.Context, identity string) error {
	if err := s.kv.Delete(ctx, KeyFor(identity)); err != nil {
		return fmt.Errorf("clear lists: %w", err)
	}
	return nil
}
