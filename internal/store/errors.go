// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store provides the in-memory repositories that own the
// canonical content, taxonomy, and configuration state.
package store

import "errors"

// Sentinel errors shared by the repositories. Expected absence on read
// operations is signaled with a (value, bool) pair instead; these errors
// only appear where an operation has a real failure mode.
var (
	// ErrNotFound is returned when a lookup that must resolve yields nothing.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when a document fails boundary validation.
	ErrValidation = errors.New("validation failed")
)
