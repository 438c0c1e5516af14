package models

// Faculty defines a staff account based on the 'faculty' table
type Faculty struct {
	ID       string `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Role     string `json:"role" db:"role"` // raw column value, see ParseFacultyRole
	Password string `json:"-" db:"password"`
}
