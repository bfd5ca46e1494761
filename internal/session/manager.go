// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session tracks the process-wide current user and persists it
// across restarts through a durable token slot.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/olegiv/lumina-go/internal/model"
	"github.com/olegiv/lumina-go/internal/session/token"
	"github.com/olegiv/lumina-go/internal/store"
)

// UserDirectory is the user lookup the manager authenticates against.
// *store.UserRepo satisfies it.
type UserDirectory interface {
	GetByEmail(email string) (model.User, bool)
}

// Manager owns the single active session. At most one user is current
// at a time; other components only read it through Current.
type Manager struct {
	mu       sync.Mutex
	users    UserDirectory
	tokens   token.Store
	fallback *model.User
	current  *model.User
}

// Option configures a Manager.
type Option func(*Manager)

// WithFallback enables the demo login policy: a login attempt with an
// unknown email yields a session for the given default identity instead
// of failing. Without this option unknown emails fail with
// store.ErrNotFound.
func WithFallback(user model.User) Option {
	return func(m *Manager) {
		m.fallback = &user
	}
}

// NewManager creates a session manager over the given user directory
// and durable token slot.
func NewManager(users UserDirectory, tokens token.Store, opts ...Option) *Manager {
	m := &Manager{users: users, tokens: tokens}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Login resolves the email to a user, makes it the current session, and
// persists a snapshot to the token slot. When persistence fails the
// in-memory session is still established and the error is returned so
// callers can decide whether best-effort durability is acceptable.
func (m *Manager) Login(ctx context.Context, email string) (model.User, error) {
	user, ok := m.users.GetByEmail(email)
	if !ok {
		if m.fallback == nil {
			return model.User{}, fmt.Errorf("login %q: %w", email, store.ErrNotFound)
		}
		user = *m.fallback
	}

	m.mu.Lock()
	m.current = &user
	m.mu.Unlock()

	slog.Info("user logged in", "email", user.Email, "role", user.Role)

	if err := m.tokens.Save(ctx, user); err != nil {
		slog.Warn("persisting session", "error", err)
		return user, fmt.Errorf("persisting session: %w", err)
	}
	return user, nil
}

// Logout clears the in-memory session and the durable slot.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	slog.Info("user logged out")

	if err := m.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

// Current returns the in-memory session if present, otherwise attempts
// to rehydrate it from the token slot. A successful rehydrate is cached
// so the slot is only read once; an absent or unreadable slot yields
// (zero, false).
func (m *Manager) Current(ctx context.Context) (model.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		return *m.current, true
	}

	user, ok, err := m.tokens.Load(ctx)
	if err != nil {
		slog.Warn("rehydrating session", "error", err)
		return model.User{}, false
	}
	if !ok {
		return model.User{}, false
	}

	m.current = &user
	return user, true
}
