package models

import "testing"

func TestParseFacultyRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"faculty", RoleFaculty},
		{"HOD", RoleHOD},
		{" admin ", RoleAdmin},
		{"", RoleFaculty},
		{"principal", RoleFaculty},
		{"student", RoleFaculty},
	}

	for _, tt := range tests {
		if got := ParseFacultyRole(tt.in); got != tt.want {
			t.Errorf("ParseFacultyRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRolePredicates(t *testing.T) {
	if !RoleStudent.IsStudent() || RoleStudent.IsFaculty() {
		t.Error("student role predicates wrong")
	}
	for _, r := range FacultyRoles {
		if r.IsStudent() || !r.IsFaculty() {
			t.Errorf("faculty role %q predicates wrong", r)
		}
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		in   string
		want *int
	}{
		{"4", intPtr(4)},
		{" 5 ", intPtr(5)},
		{"17", intPtr(17)},
		{"-1", intPtr(-1)},
		{"", nil},
		{"great", nil},
		{"3.5", nil},
	}

	for _, tt := range tests {
		got := ParseRating(tt.in)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("ParseRating(%q) = %d, want nil", tt.in, *got)
		case tt.want != nil && (got == nil || *got != *tt.want):
			t.Errorf("ParseRating(%q) = %v, want %d", tt.in, got, *tt.want)
		}
	}
}

func TestQuestionKeys(t *testing.T) {
	keys := QuestionKeys()
	if len(keys) != QuestionCount {
		t.Fatalf("got %d keys", len(keys))
	}
	if keys[0] != "q1" || keys[9] != "q10" {
		t.Errorf("unexpected keys %v", keys)
	}
}

func intPtr(n int) *int { return &n }
