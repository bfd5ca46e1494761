// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package token provides durable storage backends for the single
// session slot: a serialized snapshot of the current user that
// survives process restarts.
package token

import (
	"context"
	"errors"
	"sync"

	"github.com/olegiv/lumina-go/internal/model"
)

// ErrUnavailable is returned when the backing storage cannot be reached.
var ErrUnavailable = errors.New("session storage unavailable")

// Store persists the current-user snapshot. Load returns (zero, false,
// nil) when no session is stored; a corrupt slot is treated the same
// way, never as a fatal error.
type Store interface {
	// Save writes the user snapshot to the slot.
	Save(ctx context.Context, user model.User) error

	// Load reads the slot. ok is false when the slot is absent or unreadable.
	Load(ctx context.Context) (user model.User, ok bool, err error)

	// Clear removes the slot. Clearing an empty slot is a no-op.
	Clear(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// MemoryStore is an in-process Store used in tests and as a fallback
// when no durable backend is configured.
type MemoryStore struct {
	mu   sync.Mutex
	user model.User
	set  bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.set = true
	return nil
}

// Load implements Store.
func (s *MemoryStore) Load(_ context.Context) (model.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return model.User{}, false, nil
	}
	return s.user, true, nil
}

// Clear implements Store.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = model.User{}
	s.set = false
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() error { return nil }
