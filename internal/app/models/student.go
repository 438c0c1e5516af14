package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID       string `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Class    string `json:"class" db:"class"`
	Password string `json:"-" db:"password"`
}
