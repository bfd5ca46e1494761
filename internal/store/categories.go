// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/olegiv/lumina-go/internal/model"
	"github.com/olegiv/lumina-go/internal/util"
)

// CategoryRepo owns the category collection. Posts reference categories
// weakly; removing a category leaves referencing posts untouched.
type CategoryRepo struct {
	mu         sync.RWMutex
	categories []model.Category
}

// NewCategoryRepo creates an empty category repository.
func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{}
}

// List returns all categories in insertion order.
func (r *CategoryRepo) List() []model.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// GetByID returns the category with the given id.
func (r *CategoryRepo) GetByID(id string) (model.Category, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// Upsert replaces the category with a matching id or appends a new one.
// An empty id gets a fresh UUID and an empty slug is derived from the
// name. Returns the stored record.
func (r *CategoryRepo) Upsert(cat model.Category) model.Category {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cat.ID == "" {
		cat.ID = uuid.NewString()
	}
	if cat.Slug == "" {
		cat.Slug = util.Slugify(cat.Name)
	}

	for i := range r.categories {
		if r.categories[i].ID == cat.ID {
			r.categories[i] = cat
			return cat
		}
	}

	r.categories = append(r.categories, cat)
	return cat
}

// Remove deletes the category with the given id; no-op if absent.
func (r *CategoryRepo) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return
		}
	}
}
