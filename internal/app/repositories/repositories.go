package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yigit/feedbackd/internal/app/models"
)

// DBTX is the subset of pgx shared by *pgxpool.Pool and pgx.Tx
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// IStudentRepository defines student lookups
type IStudentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Student, error)
}

// IFacultyRepository defines faculty lookups
type IFacultyRepository interface {
	GetByID(ctx context.Context, id string) (*models.Faculty, error)
}

// ITeacherRepository defines teacher listing
type ITeacherRepository interface {
	List(ctx context.Context) ([]*models.Teacher, error)
}

// IFeedbackRepository defines feedback persistence. There is no update or delete.
type IFeedbackRepository interface {
	Exists(ctx context.Context, studentID, teacherID, semester string) (bool, error)
	SubmittedTeacherIDs(ctx context.Context, studentID, semester string) ([]string, error)
	Create(ctx context.Context, feedback *models.Feedback) (int64, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]*models.FeedbackDetail, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository  *StudentRepository
	FacultyRepository  *FacultyRepository
	TeacherRepository  *TeacherRepository
	FeedbackRepository *FeedbackRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		StudentRepository:  NewStudentRepository(db),
		FacultyRepository:  NewFacultyRepository(db),
		TeacherRepository:  NewTeacherRepository(db),
		FeedbackRepository: NewFeedbackRepository(db),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
