//go:build testutil

package repositories_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yigit/feedbackd/internal/app/models"
	"github.com/yigit/feedbackd/internal/app/repositories"
	"github.com/yigit/feedbackd/internal/pkg/apperrors"
	"github.com/yigit/feedbackd/internal/pkg/auth"
	"github.com/yigit/feedbackd/internal/seed"
	"github.com/yigit/feedbackd/internal/testutil/testdb"
)

var handle *testdb.DBHandle

func TestMain(m *testing.M) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		panic(err)
	}
	handle = h
	code := m.Run()
	h.Close()
	os.Exit(code)
}

func setup(t *testing.T) (*repositories.Repositories, context.Context) {
	t.Helper()
	ctx := context.Background()
	if err := handle.Truncate(ctx); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	if err := seed.CreateDemoData(ctx, handle.DB, auth.PlaintextVerifier{}, zerolog.Nop()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return repositories.NewRepositories(handle.DB.Pool), ctx
}

func intp(n int) *int { return &n }

func TestLookups(t *testing.T) {
	repos, ctx := setup(t)

	student, err := repos.StudentRepository.GetByID(ctx, "S001")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if student.Class != "CSE-A" || student.Password != "student123" {
		t.Errorf("student = %+v", student)
	}

	if _, err := repos.StudentRepository.GetByID(ctx, "nobody"); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("missing student err = %v", err)
	}

	faculty, err := repos.FacultyRepository.GetByID(ctx, "F001")
	if err != nil {
		t.Fatalf("faculty GetByID: %v", err)
	}
	if models.ParseFacultyRole(faculty.Role) != models.RoleHOD {
		t.Errorf("faculty role = %q", faculty.Role)
	}

	teachers, err := repos.TeacherRepository.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(teachers) != len(seed.DemoTeachers) || teachers[0].ID != "T001" {
		t.Errorf("teachers = %+v", teachers)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	_, ctx := setup(t)
	if err := seed.CreateDemoData(ctx, handle.DB, auth.PlaintextVerifier{}, zerolog.Nop()); err != nil {
		t.Fatalf("second seed: %v", err)
	}
}

func TestFeedbackLifecycle(t *testing.T) {
	repos, ctx := setup(t)
	fb := repos.FeedbackRepository
	const semester = "Fall 2024"

	row := &models.Feedback{
		StudentID: "S001", TeacherID: "T002", Semester: semester,
		Ratings:  models.Ratings{intp(4), nil, intp(2)},
		Comments: "ok",
	}
	id, err := fb.Create(ctx, row)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == 0 || row.CreatedAt.IsZero() {
		t.Errorf("Create did not fill id/created_at: %+v", row)
	}

	exists, err := fb.Exists(ctx, "S001", "T002", semester)
	if err != nil || !exists {
		t.Fatalf("Exists = %v, %v", exists, err)
	}
	if exists, _ := fb.Exists(ctx, "S001", "T002", "Spring 2025"); exists {
		t.Error("Exists must be scoped by semester")
	}

	dup := *row
	if _, err := fb.Create(ctx, &dup); !errors.Is(err, apperrors.ErrAlreadySubmitted) {
		t.Fatalf("duplicate Create err = %v, want ErrAlreadySubmitted", err)
	}

	ids, err := fb.SubmittedTeacherIDs(ctx, "S001", semester)
	if err != nil || len(ids) != 1 || ids[0] != "T002" {
		t.Fatalf("SubmittedTeacherIDs = %v, %v", ids, err)
	}

	other := &models.Feedback{StudentID: "S002", TeacherID: "T002", Semester: "Spring 2025"}
	if _, err := fb.Create(ctx, other); err != nil {
		t.Fatalf("Create other: %v", err)
	}

	details, err := fb.ListByTeacher(ctx, "T002")
	if err != nil {
		t.Fatalf("ListByTeacher: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("details = %d, want 2", len(details))
	}
	first := details[0]
	if first.StudentName != "Asha Verma" || *first.Ratings[0] != 4 || first.Ratings[1] != nil || *first.Ratings[2] != 2 {
		t.Errorf("first detail = %+v", first)
	}
	if details[1].Semester != "Spring 2025" {
		t.Errorf("second detail semester = %q", details[1].Semester)
	}

	count, err := fb.CountByStudentTeacher(ctx, "S002", "T002", "Spring 2025")
	if err != nil || count != 1 {
		t.Errorf("CountByStudentTeacher = %d, %v", count, err)
	}
}
