package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/feedbackd/internal/app/models"
	"github.com/yigit/feedbackd/internal/app/models/dto"
	"github.com/yigit/feedbackd/internal/app/repositories"
)

// DashboardService builds the per-teacher summaries shown to faculty
type DashboardService struct {
	teacherRepo  repositories.ITeacherRepository
	feedbackRepo repositories.IFeedbackRepository
	logger       zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	teacherRepo repositories.ITeacherRepository,
	feedbackRepo repositories.IFeedbackRepository,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		teacherRepo:  teacherRepo,
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// Summaries returns one summary per teacher with at least one feedback row, in teacher id order.
// Rows from every semester are included.
func (s *DashboardService) Summaries(ctx context.Context) ([]*dto.TeacherSummary, error) {
	teachers, err := s.teacherRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}

	summaries := make([]*dto.TeacherSummary, 0, len(teachers))
	for _, t := range teachers {
		rows, err := s.feedbackRepo.ListByTeacher(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("list feedback for teacher %s: %w", t.ID, err)
		}
		if summary, ok := Aggregate(t, rows); ok {
			summaries = append(summaries, summary)
		}
	}

	s.logger.Debug().Int("teachers", len(teachers)).Int("summaries", len(summaries)).Msg("Dashboard aggregated")
	return summaries, nil
}

// Aggregate computes the per-question means and overall mean for one teacher.
// A null rating adds nothing to the sum but still counts in the divisor. It reports
// false when rows is empty.
func Aggregate(teacher *models.Teacher, rows []*models.FeedbackDetail) (*dto.TeacherSummary, bool) {
	if len(rows) == 0 {
		return nil, false
	}

	var sums [models.QuestionCount]int
	for _, row := range rows {
		for i, rating := range row.Ratings {
			if rating != nil {
				sums[i] += *rating
			}
		}
	}

	n := float64(len(rows))
	summary := &dto.TeacherSummary{
		TeacherID: teacher.ID,
		Name:      teacher.Name,
		Responses: len(rows),
		Averages:  make([]dto.QuestionAverage, 0, models.QuestionCount),
		Details:   rows,
	}

	var total float64
	for i, q := range models.Questions {
		mean := float64(sums[i]) / n
		total += mean
		summary.Averages = append(summary.Averages, dto.QuestionAverage{Key: q.Key, Text: q.Text, Mean: mean})
	}
	summary.Overall = total / float64(models.QuestionCount)

	return summary, true
}
