// Package services holds the business rules behind each page: credential checks,
// feedback submission and dashboard aggregation.
package services

import (
	"context"

	"github.com/yigit/feedbackd/internal/app/models"
	"github.com/yigit/feedbackd/internal/app/models/dto"
)

// IAuthService resolves a login form into a session principal
type IAuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*models.Principal, error)
}

// IFeedbackService lists rateable teachers and records submissions
type IFeedbackService interface {
	AvailableTeachers(ctx context.Context, studentID string) ([]*models.Teacher, error)
	Submit(ctx context.Context, input dto.SubmitFeedbackInput) (*models.Feedback, error)
	Semester() string
}

// IDashboardService aggregates feedback per teacher
type IDashboardService interface {
	Summaries(ctx context.Context) ([]*dto.TeacherSummary, error)
}
