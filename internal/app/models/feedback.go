package models

import (
	"strconv"
	"strings"
	"time"
)

// Ratings holds q1..q10; nil marks an absent value
type Ratings [QuestionCount]*int

// Feedback defines one submission from the 'feedback' table. Rows are never updated.
type Feedback struct {
	ID        int64     `json:"id" db:"id"`
	StudentID string    `json:"studentId" db:"student_id"`
	TeacherID string    `json:"teacherId" db:"teacher_id"`
	Semester  string    `json:"semester" db:"semester"`
	Ratings   Ratings   `json:"ratings"`
	Comments  string    `json:"comments" db:"comments"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// FeedbackDetail is a feedback row joined with the submitting student's name
type FeedbackDetail struct {
	Feedback
	StudentName string `json:"studentName" db:"student_name"`
}

// ParseRating converts a submitted form value into a rating. Empty and non-integer
// values yield nil; there is no range check.
func ParseRating(value string) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &n
}
