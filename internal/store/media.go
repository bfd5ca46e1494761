// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/olegiv/lumina-go/internal/model"
)

// MediaRepo owns the media library. Uploads are prepended so listings
// read newest first.
type MediaRepo struct {
	mu    sync.RWMutex
	items []model.MediaItem
}

// NewMediaRepo creates an empty media repository.
func NewMediaRepo() *MediaRepo {
	return &MediaRepo{}
}

// List returns all media items, newest first.
func (r *MediaRepo) List() []model.MediaItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.MediaItem, len(r.items))
	copy(out, r.items)
	return out
}

// GetByID returns the media item with the given id.
func (r *MediaRepo) GetByID(id string) (model.MediaItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.items {
		if m.ID == id {
			return m, true
		}
	}
	return model.MediaItem{}, false
}

// Add prepends a new media item so the most recent upload lists first.
// An empty id gets a fresh UUID and a zero UploadedAt is set to now.
// Returns the stored record.
func (r *MediaRepo) Add(item model.MediaItem) model.MediaItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.UploadedAt.IsZero() {
		item.UploadedAt = time.Now()
	}

	r.items = append([]model.MediaItem{item}, r.items...)
	return item
}

// Upsert replaces the item with a matching id in place, or prepends it
// as a new upload. Returns the stored record.
func (r *MediaRepo) Upsert(item model.MediaItem) model.MediaItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = item
			return item
		}
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.UploadedAt.IsZero() {
		item.UploadedAt = time.Now()
	}
	r.items = append([]model.MediaItem{item}, r.items...)
	return item
}

// Remove deletes the media item with the given id; no-op if absent.
func (r *MediaRepo) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return
		}
	}
}

// Count returns the number of media items.
func (r *MediaRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
