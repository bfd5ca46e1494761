// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Stats holds counts derived from the live repository state.
// It is computed on demand and never stored.
type Stats struct {
	PostCount  int `json:"posts"`
	PageCount  int `json:"pages"`
	UserCount  int `json:"users"`
	MediaCount int `json:"media"`
}
