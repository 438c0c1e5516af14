package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	appModels "github.com/yigit/feedbackd/internal/app/models"
	"github.com/yigit/feedbackd/internal/db"
	"github.com/yigit/feedbackd/internal/pkg/auth"
)

// DemoStudents are inserted when database.seed_demo is set
var DemoStudents = []appModels.Student{
	{ID: "S001", Name: "Asha Verma", Class: "CSE-A", Password: "student123"},
	{ID: "S002", Name: "Ravi Kumar", Class: "CSE-A", Password: "student123"},
	{ID: "S003", Name: "Meera Iyer", Class: "ECE-B", Password: "student123"},
}

// DemoFaculty are inserted when database.seed_demo is set
var DemoFaculty = []appModels.Faculty{
	{ID: "F001", Name: "Dr. Ananya Rao", Role: string(appModels.RoleHOD), Password: "faculty123"},
	{ID: "F002", Name: "Prof. Vikram Sen", Role: string(appModels.RoleFaculty), Password: "faculty123"},
	{ID: "A001", Name: "Admin Office", Role: string(appModels.RoleAdmin), Password: "admin123"},
}

// DemoTeachers are inserted when database.seed_demo is set
var DemoTeachers = []appModels.Teacher{
	{ID: "T001", Name: "Mr. Arjun Mehta"},
	{ID: "T002", Name: "Ms. Kavya Nair"},
	{ID: "T003", Name: "Dr. Suresh Pillai"},
	{ID: "T004", Name: "Mrs. Lata Joshi"},
}

// CreateDemoData inserts the demo rows in one transaction. Existing ids are left
// untouched, so running it again is harmless. Passwords are stored in the form the
// configured verifier expects.
func CreateDemoData(ctx context.Context, database *db.PostgresDB, verifier auth.PasswordVerifier, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating demo data (students/faculty/teachers)...")

	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		inserts, err := demoInserts(verifier)
		if err != nil {
			return err
		}

		var finalErr error
		for _, q := range inserts {
			sql, args, err := q.builder.ToSql()
			if err != nil {
				finalErr = errors.Join(finalErr, fmt.Errorf("build %s seed: %w", q.table, err))
				continue
			}
			tag, err := tx.Exec(ctx, sql, args...)
			if err != nil {
				lgr.Error().Err(err).Str("table", q.table).Msg("Error inserting demo rows")
				finalErr = errors.Join(finalErr, fmt.Errorf("seed %s: %w", q.table, err))
				continue
			}
			lgr.Info().Str("table", q.table).Int64("inserted", tag.RowsAffected()).Msg("Demo rows ensured")
		}
		return finalErr
	})
}

type seedInsert struct {
	table   string
	builder squirrel.InsertBuilder
}

func demoInserts(verifier auth.PasswordVerifier) ([]seedInsert, error) {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	const onConflict = "ON CONFLICT (id) DO NOTHING"

	students := sb.Insert("students").Columns("id", "name", "class", "password").Suffix(onConflict)
	for _, s := range DemoStudents {
		pw, err := verifier.Prepare(s.Password)
		if err != nil {
			return nil, fmt.Errorf("prepare password for %s: %w", s.ID, err)
		}
		students = students.Values(s.ID, s.Name, s.Class, pw)
	}

	faculty := sb.Insert("faculty").Columns("id", "name", "role", "password").Suffix(onConflict)
	for _, f := range DemoFaculty {
		pw, err := verifier.Prepare(f.Password)
		if err != nil {
			return nil, fmt.Errorf("prepare password for %s: %w", f.ID, err)
		}
		faculty = faculty.Values(f.ID, f.Name, f.Role, pw)
	}

	teachers := sb.Insert("teachers").Columns("id", "name").Suffix(onConflict)
	for _, t := range DemoTeachers {
		teachers = teachers.Values(t.ID, t.Name)
	}

	return []seedInsert{
		{table: "students", builder: students},
		{table: "faculty", builder: faculty},
		{table: "teachers", builder: teachers},
	}, nil
}
