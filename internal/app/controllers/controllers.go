// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/feedbackd/internal/middleware"
	"github.com/yigit/feedbackd/internal/pkg/session"
)

// Page paths used for redirects
const (
	LoginPath     = "/"
	FeedbackPath  = "/feedback"
	DashboardPath = "/dashboard"
)

// render executes a page with the pending notices and the current principal
func render(ctx *gin.Context, page, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Notices"] = session.Flashes(ctx)
	if p, ok := session.Current(ctx); ok {
		data["Principal"] = &p
	}
	ctx.HTML(http.StatusOK, page, data)
}

func flashSuccess(ctx *gin.Context, lgr zerolog.Logger, message string, redirectTo string) {
	if err := session.Flash(ctx, session.KindSuccess, message); err != nil {
		middleware.HandlePageError(ctx, lgr, err, redirectTo)
		return
	}
	ctx.Redirect(http.StatusFound, redirectTo)
}
