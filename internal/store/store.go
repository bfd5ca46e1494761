// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "github.com/olegiv/lumina-go/internal/model"

// Store bundles the repositories that make up the backend state. It is
// constructed explicitly by the process entry point and handed to
// consumers; there is no ambient global instance, so tests can build
// isolated stores freely.
type Store struct {
	Content    *ContentRepo
	Users      *UserRepo
	Categories *CategoryRepo
	Media      *MediaRepo
	Plugins    *PluginRepo
	Config     *ConfigStore
}

// New creates a store with empty repositories and zero-value
// configuration documents. Call Seed to load the sample fixtures.
func New() *Store {
	return &Store{
		Content:    NewContentRepo(),
		Users:      NewUserRepo(),
		Categories: NewCategoryRepo(),
		Media:      NewMediaRepo(),
		Plugins:    NewPluginRepo(),
		Config:     NewConfigStore(model.SiteSettings{}, model.ThemeConfig{}),
	}
}

// Stats derives read-only counts from the live repository state. It is
// a pure read: nothing is cached, so the result is always consistent
// with the repositories at call time.
func (s *Store) Stats() model.Stats {
	return model.Stats{
		PostCount:  s.Content.Count(model.ContentTypePost),
		PageCount:  s.Content.Count(model.ContentTypePage),
		UserCount:  s.Users.Count(),
		MediaCount: s.Media.Count(),
	}
}
