package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/feedbackd/internal/app/models"
	"github.com/yigit/feedbackd/internal/pkg/apperrors"
	"github.com/yigit/feedbackd/internal/pkg/dberrors"
	"github.com/yigit/feedbackd/internal/pkg/logger"
)

// FeedbackUniqueConstraint is the unique index over (student_id, teacher_id, semester)
const FeedbackUniqueConstraint = "feedback_student_teacher_semester_key"

var ratingColumns = models.QuestionKeys()

// FeedbackRepository handles feedback database operations
type FeedbackRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db DBTX) *FeedbackRepository {
	return &FeedbackRepository{db: db, sb: statementBuilder()}
}

// CountByStudentTeacher counts rows for a student, teacher and semester
func (r *FeedbackRepository) CountByStudentTeacher(ctx context.Context, studentID, teacherID, semester string) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("feedback").
		Where(squirrel.Eq{"student_id": studentID, "teacher_id": teacherID, "semester": semester}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count feedback query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting feedback: %w", err)
	}
	return count, nil
}

// Exists reports whether the student already rated the teacher this semester
func (r *FeedbackRepository) Exists(ctx context.Context, studentID, teacherID, semester string) (bool, error) {
	count, err := r.CountByStudentTeacher(ctx, studentID, teacherID, semester)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SubmittedTeacherIDs returns the teacher ids the student rated in the semester
func (r *FeedbackRepository) SubmittedTeacherIDs(ctx context.Context, studentID, semester string) ([]string, error) {
	sql, args, err := r.sb.Select("DISTINCT teacher_id").
		From("feedback").
		Where(squirrel.Eq{"student_id": studentID, "semester": semester}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build submitted teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying submitted teachers: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning teacher id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Create inserts a feedback row and returns its id
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) (int64, error) {
	columns := append([]string{"student_id", "teacher_id", "semester"}, ratingColumns...)
	columns = append(columns, "comments")

	values := []any{feedback.StudentID, feedback.TeacherID, feedback.Semester}
	for _, rating := range feedback.Ratings {
		values = append(values, rating)
	}
	values = append(values, feedback.Comments)

	sql, args, err := r.sb.Insert("feedback").
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert feedback query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, FeedbackUniqueConstraint) {
			return 0, fmt.Errorf("%w: %s", apperrors.ErrAlreadySubmitted, feedback.TeacherID)
		}
		logger.Error().Err(err).
			Str("studentID", feedback.StudentID).
			Str("teacherID", feedback.TeacherID).
			Msg("Error inserting feedback")
		return 0, fmt.Errorf("error creating feedback: %w", err)
	}

	return feedback.ID, nil
}

// ListByTeacher returns the teacher's feedback rows joined with the student's name, in
// insertion order. Rows whose student no longer exists are not returned.
func (r *FeedbackRepository) ListByTeacher(ctx context.Context, teacherID string) ([]*models.FeedbackDetail, error) {
	columns := []string{"f.id", "f.student_id", "f.teacher_id", "f.semester"}
	for _, col := range ratingColumns {
		columns = append(columns, "f."+col)
	}
	columns = append(columns, "f.comments", "f.created_at", "s.name")

	sql, args, err := r.sb.Select(columns...).
		From("feedback f").
		Join("students s ON s.id = f.student_id").
		Where(squirrel.Eq{"f.teacher_id": teacherID}).
		OrderBy("f.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list feedback query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("teacherID", teacherID).Msg("Error executing list feedback query")
		return nil, fmt.Errorf("error querying feedback: %w", err)
	}
	defer rows.Close()

	details := []*models.FeedbackDetail{}
	for rows.Next() {
		d := &models.FeedbackDetail{}
		dest := []any{&d.ID, &d.StudentID, &d.TeacherID, &d.Semester}
		for i := range d.Ratings {
			dest = append(dest, &d.Ratings[i])
		}
		dest = append(dest, &d.Comments, &d.CreatedAt, &d.StudentName)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("error scanning feedback row: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}

	return details, nil
}
