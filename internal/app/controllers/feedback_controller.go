package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/feedbackd/internal/app/models"
	"github.com/yigit/feedbackd/internal/app/models/dto"
	"github.com/yigit/feedbackd/internal/app/services"
	"github.com/yigit/feedbackd/internal/app/views"
	"github.com/yigit/feedbackd/internal/middleware"
	"github.com/yigit/feedbackd/internal/pkg/apperrors"
	"github.com/yigit/feedbackd/internal/pkg/metrics"
)

// NoticeFeedbackThanks is shown after a recorded submission
const NoticeFeedbackThanks = "Thank you for your valuable feedback!"

// FeedbackController serves the student feedback form
type FeedbackController struct {
	feedbackService services.IFeedbackService
	logger          zerolog.Logger
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.IFeedbackService, logger zerolog.Logger) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// ShowForm lists the teachers the student has not rated this semester
func (c *FeedbackController) ShowForm(ctx *gin.Context) {
	principal := middleware.CurrentPrincipal(ctx)

	teachers, err := c.feedbackService.AvailableTeachers(ctx.Request.Context(), principal.UserID)
	if err != nil {
		middleware.HandlePageError(ctx, c.logger, err, LoginPath)
		return
	}

	render(ctx, views.FeedbackPage, "Feedback", gin.H{
		"Teachers":  teachers,
		"Questions": models.Questions,
		"Semester":  c.feedbackService.Semester(),
	})
}

// Submit records one feedback row for the selected teacher
func (c *FeedbackController) Submit(ctx *gin.Context) {
	principal := middleware.CurrentPrincipal(ctx)

	var form dto.FeedbackForm
	if err := ctx.ShouldBind(&form); err != nil {
		metrics.CountSubmission(metrics.ResultError)
		middleware.HandlePageError(ctx, c.logger, err, FeedbackPath)
		return
	}

	input := dto.SubmitFeedbackInput{
		StudentID: principal.UserID,
		TeacherID: form.TeacherID,
		Comments:  form.Comments,
	}
	for i, q := range models.Questions {
		input.Ratings[i] = models.ParseRating(ctx.PostForm(q.Key))
	}

	if _, err := c.feedbackService.Submit(ctx.Request.Context(), input); err != nil {
		if apperrors.Is(err, apperrors.ErrAlreadySubmitted) {
			metrics.CountSubmission(metrics.ResultDuplicate)
		} else {
			metrics.CountSubmission(metrics.ResultError)
		}
		middleware.HandlePageError(ctx, c.logger, err, FeedbackPath)
		return
	}

	metrics.CountSubmission(metrics.ResultSuccess)
	flashSuccess(ctx, c.logger, NoticeFeedbackThanks, FeedbackPath)
}
