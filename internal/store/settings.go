// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"fmt"
	"sync"

	"github.com/olegiv/lumina-go/internal/model"
)

// ConfigStore owns the site settings and theme configuration documents.
// Both are whole-document replace targets: no merging, no partial
// patching. Saves validate document shape at the boundary and reject
// structurally invalid documents.
type ConfigStore struct {
	mu       sync.RWMutex
	settings model.SiteSettings
	theme    model.ThemeConfig
}

// NewConfigStore creates a config store holding the given initial documents.
func NewConfigStore(settings model.SiteSettings, theme model.ThemeConfig) *ConfigStore {
	return &ConfigStore{settings: settings, theme: theme}
}

// Settings returns the current site settings document.
func (s *ConfigStore) Settings() model.SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SaveSettings replaces the site settings document wholesale.
// A document without a site title is rejected.
func (s *ConfigStore) SaveSettings(doc model.SiteSettings) error {
	if doc.General.Title == "" {
		return fmt.Errorf("%w: general.title must not be empty", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = doc
	return nil
}

// Theme returns the current theme configuration.
func (s *ConfigStore) Theme() model.ThemeConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SaveTheme replaces the theme configuration wholesale. Documents with
// an unknown layout or no active theme are rejected.
func (s *ConfigStore) SaveTheme(doc model.ThemeConfig) error {
	if doc.ActiveTheme == "" {
		return fmt.Errorf("%w: activeTheme must not be empty", ErrValidation)
	}
	if !model.IsValidLayout(doc.Layout) {
		return fmt.Errorf("%w: unknown layout %q", ErrValidation, doc.Layout)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = doc
	return nil
}
