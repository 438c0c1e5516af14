package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/feedbackd/internal/app/services"
	"github.com/yigit/feedbackd/internal/app/views"
	"github.com/yigit/feedbackd/internal/middleware"
	"github.com/yigit/feedbackd/internal/pkg/export"
)

// DashboardController serves the faculty dashboard
type DashboardController struct {
	dashboardService services.IDashboardService
	logger           zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.IDashboardService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Show renders per-teacher averages. Students are sent to the feedback form.
func (c *DashboardController) Show(ctx *gin.Context) {
	principal := middleware.CurrentPrincipal(ctx)
	if principal.Role.IsStudent() {
		ctx.Redirect(http.StatusFound, FeedbackPath)
		return
	}

	summaries, err := c.dashboardService.Summaries(ctx.Request.Context())
	if err != nil {
		middleware.HandlePageError(ctx, c.logger, err, LoginPath)
		return
	}

	render(ctx, views.DashboardPage, "Dashboard", gin.H{
		"Summaries": summaries,
		"CanExport": principal.Role.IsFaculty(),
	})
}

// Export streams the dashboard as an .xlsx workbook
func (c *DashboardController) Export(ctx *gin.Context) {
	summaries, err := c.dashboardService.Summaries(ctx.Request.Context())
	if err != nil {
		middleware.HandlePageError(ctx, c.logger, err, DashboardPath)
		return
	}

	wb, err := export.NewDashboardWorkbook(summaries)
	if err != nil {
		middleware.HandlePageError(ctx, c.logger, err, DashboardPath)
		return
	}
	defer wb.Close()

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.FileName(time.Now())))
	ctx.Header("Content-Type", export.ContentType)
	ctx.Status(http.StatusOK)
	if _, err := wb.WriteTo(ctx.Writer); err != nil {
		c.logger.Error().Err(err).Msg("Failed to stream dashboard export")
	}
}
