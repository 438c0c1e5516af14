// Package export renders dashboard summaries as spreadsheet downloads.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/yigit/feedbackd/internal/app/models"
	"github.com/yigit/feedbackd/internal/app/models/dto"
)

// Sheet names
const (
	SummarySheet   = "Summary"
	ResponsesSheet = "Responses"
)

// ContentType is the MIME type of an .xlsx workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DashboardWorkbook holds the Summary and Responses sheets for a set of summaries
type DashboardWorkbook struct {
	File *excelize.File
}

// NewDashboardWorkbook builds a workbook with one Summary row per teacher and one
// Responses row per feedback submission.
func NewDashboardWorkbook(summaries []*dto.TeacherSummary) (*DashboardWorkbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(ResponsesSheet); err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}

	keys := models.QuestionKeys()

	summaryHeader := append([]any{"Teacher ID", "Teacher", "Responses"}, toAny(keys)...)
	summaryHeader = append(summaryHeader, "Overall")
	summaryRows := [][]any{summaryHeader}

	responseHeader := append([]any{"Teacher ID", "Teacher", "Student ID", "Student", "Semester"}, toAny(keys)...)
	responseHeader = append(responseHeader, "Comments", "Submitted")
	responseRows := [][]any{responseHeader}

	for _, s := range summaries {
		row := []any{s.TeacherID, s.Name, s.Responses}
		for _, avg := range s.Averages {
			row = append(row, avg.Mean)
		}
		summaryRows = append(summaryRows, append(row, s.Overall))

		for _, d := range s.Details {
			r := []any{s.TeacherID, s.Name, d.StudentID, d.StudentName, d.Semester}
			for _, rating := range d.Ratings {
				if rating == nil {
					r = append(r, "")
				} else {
					r = append(r, *rating)
				}
			}
			responseRows = append(responseRows, append(r, d.Comments, d.CreatedAt.Format(time.RFC3339)))
		}
	}

	if err := writeRows(f, SummarySheet, summaryRows); err != nil {
		return nil, err
	}
	if err := writeRows(f, ResponsesSheet, responseRows); err != nil {
		return nil, err
	}

	return &DashboardWorkbook{File: f}, nil
}

// WriteTo streams the workbook
func (w *DashboardWorkbook) WriteTo(out io.Writer) (int64, error) {
	return w.File.WriteTo(out)
}

// Close releases the workbook
func (w *DashboardWorkbook) Close() error {
	return w.File.Close()
}

// FileName is the download name for an export generated at t
func FileName(t time.Time) string {
	return fmt.Sprintf("feedback_%s.xlsx", t.Format("2006-01-02"))
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, r+1, err)
		}
	}

	if len(rows) == 0 {
		return nil
	}
	end, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetCellStyle(sheet, "A1", end, bold)
	}
	_ = f.AutoFilter(sheet, "A1:"+end, nil)
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
