// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models and types used throughout the application
// including User, Post, and configuration structures.
package model

import "time"

// User roles, ordered from most to least privileged.
const (
	RoleAdmin     = "ADMIN"
	RoleModerator = "MODERATOR"
	RoleAuthor    = "AUTHOR"
	RoleUser      = "USER"
)

// rolePrivilege maps each role to its privilege rank (higher = more privileged).
var rolePrivilege = map[string]int{
	RoleAdmin:     4,
	RoleModerator: 3,
	RoleAuthor:    2,
	RoleUser:      1,
}

// User represents a CMS user.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// AtLeast returns true if the user's role is at least as privileged as role.
// Unknown roles rank below USER.
func (u *User) AtLeast(role string) bool {
	return rolePrivilege[u.Role] >= rolePrivilege[role]
}

// IsValidRole checks if a role is one of the known roles.
func IsValidRole(role string) bool {
	_, ok := rolePrivilege[role]
	return ok
}
