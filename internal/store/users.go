// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/olegiv/lumina-go/internal/model"
)

// UserRepo owns the user collection.
type UserRepo struct {
	mu    sync.RWMutex
	users []model.User
}

// NewUserRepo creates an empty user repository.
func NewUserRepo() *UserRepo {
	return &UserRepo{}
}

// List returns all users in insertion order.
func (r *UserRepo) List() []model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.User, len(r.users))
	copy(out, r.users)
	return out
}

// GetByID returns the user with the given id.
func (r *UserRepo) GetByID(id string) (model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// GetByEmail returns the user with the given email. Email is the login
// lookup key and matching is exact.
func (r *UserRepo) GetByEmail(email string) (model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, true
		}
	}
	return model.User{}, false
}

// Upsert replaces the user with a matching id or appends a new one.
// An empty id gets a fresh UUID; CreatedAt is set on first insertion.
// Returns the stored record.
func (r *UserRepo) Upsert(user model.User) model.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = user
			return user
		}
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.users = append(r.users, user)
	return user
}

// Remove deletes the user with the given id; no-op if absent.
func (r *UserRepo) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return
		}
	}
}

// Count returns the number of users.
func (r *UserRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
