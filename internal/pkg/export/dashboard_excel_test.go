package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/yigit/feedbackd/internal/app/models"
	"github.com/yigit/feedbackd/internal/app/models/dto"
)

func TestNewDashboardWorkbook(t *testing.T) {
	four := 4
	summaries := []*dto.TeacherSummary{
		{
			TeacherID: "T1", Name: "Alice", Responses: 1, Overall: 0.4,
			Averages: []dto.QuestionAverage{{Key: "q1", Mean: 4}},
			Details: []*models.FeedbackDetail{{
				Feedback:    models.Feedback{StudentID: "S001", Semester: "Fall 2024", Ratings: models.Ratings{&four}, Comments: "clear"},
				StudentName: "Asha",
			}},
		},
		{TeacherID: "T2", Name: "Bob", Responses: 0},
	}

	wb, err := NewDashboardWorkbook(summaries)
	if err != nil {
		t.Fatalf("NewDashboardWorkbook: %v", err)
	}
	var buf bytes.Buffer
	if _, err := wb.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	_ = wb.Close()

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	summaryRows, err := f.GetRows(SummarySheet)
	if err != nil {
		t.Fatalf("GetRows(Summary): %v", err)
	}
	if len(summaryRows) != 3 {
		t.Fatalf("summary rows = %d, want header + 2", len(summaryRows))
	}
	if summaryRows[0][0] != "Teacher ID" || summaryRows[1][1] != "Alice" || summaryRows[2][1] != "Bob" {
		t.Errorf("summary rows = %v", summaryRows)
	}

	responseRows, err := f.GetRows(ResponsesSheet)
	if err != nil {
		t.Fatalf("GetRows(Responses): %v", err)
	}
	if len(responseRows) != 2 {
		t.Fatalf("response rows = %d, want header + 1", len(responseRows))
	}
	if got := responseRows[1][3]; got != "Asha" {
		t.Errorf("student = %q", got)
	}
	if got := responseRows[1][5]; got != "4" {
		t.Errorf("q1 = %q", got)
	}
}

func TestFileName(t *testing.T) {
	got := FileName(time.Date(2024, 11, 3, 10, 0, 0, 0, time.UTC))
	if got != "feedback_2024-11-03.xlsx" {
		t.Errorf("FileName = %q", got)
	}
}
