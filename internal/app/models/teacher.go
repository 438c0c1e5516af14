package models

// Teacher is a rateable subject from the 'teachers' table
type Teacher struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
