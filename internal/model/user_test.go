package model

import "testing"

func TestUserAtLeast(t *testing.T) {
	tests := []struct {
		name string
		role string
		min  string
		want bool
	}{
		{"admin outranks moderator", RoleAdmin, RoleModerator, true},
		{"moderator outranks author", RoleModerator, RoleAuthor, true},
		{"author below moderator", RoleAuthor, RoleModerator, false},
		{"user meets user", RoleUser, RoleUser, true},
		{"unknown role ranks below user", "GUEST", RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := User{Role: tt.role}
			if got := u.AtLeast(tt.min); got != tt.want {
				t.Errorf("AtLeast(%q) for role %q = %v, want %v", tt.min, tt.role, got, tt.want)
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	if !(&User{Role: RoleAdmin}).IsAdmin() {
		t.Error("IsAdmin() = false for admin")
	}
	if (&User{Role: RoleModerator}).IsAdmin() {
		t.Error("IsAdmin() = true for moderator")
	}
}

func TestIsValidRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleModerator, RoleAuthor, RoleUser} {
		if !IsValidRole(role) {
			t.Errorf("IsValidRole(%q) = false", role)
		}
	}
	if IsValidRole("GUEST") {
		t.Error(`IsValidRole("GUEST") = true`)
	}
}
