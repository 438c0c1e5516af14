package models

import "strings"

// Role is the closed set of session roles
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleHOD     Role = "hod"
	RoleAdmin   Role = "admin"
)

// FacultyRoles lists every role a faculty row can carry
var FacultyRoles = []Role{RoleFaculty, RoleHOD, RoleAdmin}

// IsStudent reports whether r is the student role
func (r Role) IsStudent() bool { return r == RoleStudent }

// IsFaculty reports whether r is one of FacultyRoles
func (r Role) IsFaculty() bool {
	for _, fr := range FacultyRoles {
		if r == fr {
			return true
		}
	}
	return false
}

// ParseFacultyRole maps the role column of a faculty row onto the enumeration.
// Unknown and empty values become RoleFaculty.
func ParseFacultyRole(s string) Role {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if r.IsFaculty() {
		return r
	}
	return RoleFaculty
}

// LoginType selects the identity table used at login
type LoginType string

const (
	LoginStudent LoginType = "student"
	LoginFaculty LoginType = "faculty"
)

// Principal is the authenticated identity kept in the session
type Principal struct {
	UserID string
	Name   string
	Role   Role
	// Class is only set for students
	Class string
}
