package model

import "testing"

func TestEffectiveRole(t *testing.T) {
	tests := []struct {
		role Role
		want Role
	}{
		{RoleStudent, RoleStudent},
		{RoleTeacher, RoleTeacher},
		{RoleAssistant, RoleTeacher},
		{Role(""), Role("")},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := EffectiveRole(tt.role); got != tt.want {
				t.Errorf("EffectiveRole(%q) = %q, want %q", tt.role, got, tt.want)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in     string
		want   Role
		wantOK bool
	}{
		{"Student", RoleStudent, true},
		{"student", RoleStudent, true},
		{"TEACHER", RoleTeacher, true},
		{" Assistant ", RoleAssistant, true},
		{"", "", false},
		{"admin", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseRole(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseRole(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSession_CanTeach(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleTeacher, true},
		{RoleAssistant, true}, // inherited access
		{RoleStudent, false},
		{Role(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			sess := &Session{Role: tt.role}
			if got := sess.CanTeach(); got != tt.want {
				t.Errorf("CanTeach() with role %q = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}
