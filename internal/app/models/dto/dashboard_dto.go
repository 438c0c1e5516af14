package dto

import "github.com/yigit/feedbackd/internal/app/models"

// QuestionAverage is the mean rating for one question
type QuestionAverage struct {
	Key  string  `json:"key"`
	Text string  `json:"text"`
	Mean float64 `json:"mean"`
}

// TeacherSummary is the aggregated view of all feedback received by one teacher
type TeacherSummary struct {
	TeacherID string                   `json:"teacherId"`
	Name      string                   `json:"name"`
	Responses int                      `json:"responses"`
	Averages  []QuestionAverage        `json:"averages"`
	Overall   float64                  `json:"overall"`
	Details   []*models.FeedbackDetail `json:"details,omitempty"`
}

// Mean returns the average for a question key, or 0 if the key is unknown
func (s *TeacherSummary) Mean(key string) float64 {
	for _, a := range s.Averages {
		if a.Key == key {
			return a.Mean
		}
	}
	return 0
}
