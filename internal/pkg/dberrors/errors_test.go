package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	unique := &pgconn.PgError{Code: UniqueViolation, ConstraintName: "feedback_student_teacher_semester_key"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{"wrapped match", fmt.Errorf("insert: %w", unique), "feedback_student_teacher_semester_key", true},
		{"any constraint", unique, "", true},
		{"other constraint", unique, "students_pkey", false},
		{"other code", &pgconn.PgError{Code: "23503"}, "", false},
		{"plain error", errors.New("boom"), "", false},
		{"nil", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicateConstraintError(tt.err, tt.constraint); got != tt.want {
				t.Errorf("IsDuplicateConstraintError() = %v, want %v", got, tt.want)
			}
		})
	}
}
