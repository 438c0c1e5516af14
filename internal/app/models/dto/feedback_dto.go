package dto

import "github.com/yigit/feedbackd/internal/app/models"

// FeedbackForm holds the free-text fields of a feedback submission. Ratings are read
// per question key by the controller.
type FeedbackForm struct {
	TeacherID string `form:"teacher"`
	Comments  string `form:"comments"`
}

// SubmitFeedbackInput is everything the service needs to record one submission
type SubmitFeedbackInput struct {
	StudentID string
	TeacherID string
	Ratings   models.Ratings
	Comments  string
}
