package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/feedbackd/internal/app/models"
	"github.com/yigit/feedbackd/internal/app/models/dto"
	"github.com/yigit/feedbackd/internal/app/services"
	"github.com/yigit/feedbackd/internal/app/views"
	"github.com/yigit/feedbackd/internal/middleware"
	"github.com/yigit/feedbackd/internal/pkg/apperrors"
	"github.com/yigit/feedbackd/internal/pkg/metrics"
	"github.com/yigit/feedbackd/internal/pkg/session"
)

// NoticeLoggedOut is shown after logout
const NoticeLoggedOut = "You have been logged out."

// AuthController handles login and logout
type AuthController struct {
	authService services.IAuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.IAuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// ShowLogin renders the login form. An existing session does not redirect.
func (c *AuthController) ShowLogin(ctx *gin.Context) {
	render(ctx, views.LoginPage, "Login", nil)
}

// Login checks the submitted credentials and starts a session
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Debug().Err(err).Msg("Login form incomplete")
		metrics.CountLogin(loginTypeLabel(req.LoginType), metrics.ResultRejected)
		middleware.HandlePageError(ctx, c.logger, fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err), LoginPath)
		return
	}

	principal, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		result := metrics.ResultError
		if apperrors.Is(err, apperrors.ErrInvalidCredentials) {
			result = metrics.ResultRejected
		}
		metrics.CountLogin(loginTypeLabel(req.LoginType), result)
		middleware.HandlePageError(ctx, c.logger, err, LoginPath)
		return
	}

	if err := session.Save(ctx, *principal); err != nil {
		metrics.CountLogin(loginTypeLabel(req.LoginType), metrics.ResultError)
		middleware.HandlePageError(ctx, c.logger, err, LoginPath)
		return
	}
	metrics.CountLogin(loginTypeLabel(req.LoginType), metrics.ResultSuccess)

	c.logger.Info().Str("userID", principal.UserID).Str("role", string(principal.Role)).Msg("User logged in")

	if principal.Role.IsStudent() {
		ctx.Redirect(http.StatusFound, FeedbackPath)
		return
	}
	ctx.Redirect(http.StatusFound, DashboardPath)
}

// Logout clears the session unconditionally
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := session.Reset(ctx, session.Notice{Kind: session.KindSuccess, Message: NoticeLoggedOut}); err != nil {
		c.logger.Error().Err(err).Msg("Failed to clear session")
	}
	ctx.Redirect(http.StatusFound, LoginPath)
}

func loginTypeLabel(t models.LoginType) string {
	switch t {
	case models.LoginStudent, models.LoginFaculty:
		return string(t)
	default:
		return "unknown"
	}
}
