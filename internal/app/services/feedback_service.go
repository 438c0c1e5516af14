package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/feedbackd/internal/app/models"
	"github.com/yigit/feedbackd/internal/app/models/dto"
	"github.com/yigit/feedbackd/internal/app/repositories"
	"github.com/yigit/feedbackd/internal/pkg/apperrors"
)

// FeedbackService handles the student side of feedback
type FeedbackService struct {
	teacherRepo  repositories.ITeacherRepository
	feedbackRepo repositories.IFeedbackRepository
	semester     string
	logger       zerolog.Logger
}

// NewFeedbackService creates a new FeedbackService filing submissions under semester
func NewFeedbackService(
	teacherRepo repositories.ITeacherRepository,
	feedbackRepo repositories.IFeedbackRepository,
	semester string,
	logger zerolog.Logger,
) *FeedbackService {
	return &FeedbackService{
		teacherRepo:  teacherRepo,
		feedbackRepo: feedbackRepo,
		semester:     semester,
		logger:       logger,
	}
}

// Semester returns the semester new submissions are filed under
func (s *FeedbackService) Semester() string {
	return s.semester
}

// AvailableTeachers returns all teachers minus those the student already rated this semester
func (s *FeedbackService) AvailableTeachers(ctx context.Context, studentID string) ([]*models.Teacher, error) {
	teachers, err := s.teacherRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}

	rated, err := s.feedbackRepo.SubmittedTeacherIDs(ctx, studentID, s.semester)
	if err != nil {
		return nil, fmt.Errorf("list rated teachers: %w", err)
	}

	done := make(map[string]struct{}, len(rated))
	for _, id := range rated {
		done[id] = struct{}{}
	}

	available := make([]*models.Teacher, 0, len(teachers))
	for _, t := range teachers {
		if _, ok := done[t.ID]; !ok {
			available = append(available, t)
		}
	}
	return available, nil
}

// Submit records one feedback row. A second submission for the same teacher and
// semester returns ErrAlreadySubmitted and leaves the store unchanged.
func (s *FeedbackService) Submit(ctx context.Context, input dto.SubmitFeedbackInput) (*models.Feedback, error) {
	exists, err := s.feedbackRepo.Exists(ctx, input.StudentID, input.TeacherID, s.semester)
	if err != nil {
		return nil, fmt.Errorf("check existing feedback: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAlreadySubmitted
	}

	feedback := &models.Feedback{
		StudentID: input.StudentID,
		TeacherID: input.TeacherID,
		Semester:  s.semester,
		Ratings:   input.Ratings,
		Comments:  input.Comments,
	}

	if _, err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		if errors.Is(err, apperrors.ErrAlreadySubmitted) {
			s.logger.Info().
				Str("studentID", input.StudentID).
				Str("teacherID", input.TeacherID).
				Msg("Concurrent duplicate submission rejected by unique index")
			return nil, apperrors.ErrAlreadySubmitted
		}
		return nil, fmt.Errorf("create feedback: %w", err)
	}

	s.logger.Info().
		Int64("feedbackID", feedback.ID).
		Str("teacherID", feedback.TeacherID).
		Str("semester", feedback.Semester).
		Msg("Feedback recorded")
	return feedback, nil
}
