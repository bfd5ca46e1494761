// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"sync"

	"github.com/olegiv/lumina-go/internal/model"
)

// PluginRepo owns the plugin collection. The only runtime mutation the
// admin surface performs is toggling the active flag.
type PluginRepo struct {
	mu      sync.RWMutex
	plugins []model.Plugin
}

// NewPluginRepo creates an empty plugin repository.
func NewPluginRepo() *PluginRepo {
	return &PluginRepo{}
}

// List returns all plugins in registration order.
func (r *PluginRepo) List() []model.Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Plugin, len(r.plugins))
	copy(out, r.plugins)
	return out
}

// GetByID returns the plugin with the given id.
func (r *PluginRepo) GetByID(id string) (model.Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.plugins {
		if p.ID == id {
			return p, true
		}
	}
	return model.Plugin{}, false
}

// Upsert replaces the plugin with a matching id or appends a new one.
// Returns the stored record.
func (r *PluginRepo) Upsert(plugin model.Plugin) model.Plugin {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.plugins {
		if r.plugins[i].ID == plugin.ID {
			r.plugins[i] = plugin
			return plugin
		}
	}

	r.plugins = append(r.plugins, plugin)
	return plugin
}

// Remove deletes the plugin with the given id; no-op if absent.
func (r *PluginRepo) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.plugins {
		if r.plugins[i].ID == id {
			r.plugins = append(r.plugins[:i], r.plugins[i+1:]...)
			return
		}
	}
}

// Toggle flips the active flag of the plugin with the given id and
// returns the post-toggle plugin. Unknown ids are a no-op.
func (r *PluginRepo) Toggle(id string) (model.Plugin, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.plugins {
		if r.plugins[i].ID == id {
			r.plugins[i].Active = !r.plugins[i].Active
			return r.plugins[i], true
		}
	}
	return model.Plugin{}, false
}
