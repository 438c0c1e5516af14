// Package views embeds the HTML pages rendered through gin's template renderer.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names
const (
	LoginPage     = "login.html"
	FeedbackPage  = "feedback.html"
	DashboardPage = "dashboard.html"
)

// Funcs are the helpers available inside every page
var Funcs = template.FuncMap{
	"mean":   FormatMean,
	"rating": FormatRating,
	"date":   FormatDate,
	"scale":  func() []int { return []int{1, 2, 3, 4, 5} },
}

// Templates parses every embedded page
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// FormatMean renders an average with two decimals
func FormatMean(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatRating renders a stored rating, "-" when absent
func FormatRating(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

// FormatDate renders a submission timestamp
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
