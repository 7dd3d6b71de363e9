package models

import "testing"

func TestUser_FullName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Ada", "Lovelace", "Ada Lovelace"},
		{"Ada", "", "Ada"},
		{"", "Lovelace", "Lovelace"},
		{"", "", ""},
	}

	for _, tt := range tests {
		user := &User{FirstName: tt.first, LastName: tt.last}
		if got := user.FullName(); got != tt.want {
			t.Errorf("FullName(%q, %q) = %q, want %q", tt.first, tt.last, got, tt.want)
		}
	}
}

func TestUserRole(t *testing.T) {
	for _, role := range []UserRole{RoleStudent, RoleTeacher, RoleAdmin} {
		if !role.Valid() {
			t.Errorf("Role %s should be valid", role)
		}
		if role.DisplayName() == "" {
			t.Errorf("Role %s needs a display name", role)
		}
	}
	if UserRole("SUPERUSER").Valid() {
		t.Error("Unknown role must be invalid")
	}
}
