package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/feedbackd/internal/app/controllers"
	"github.com/yigit/feedbackd/internal/app/models"
	"github.com/yigit/feedbackd/internal/middleware"
)

// SetupRouter configures all page routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	feedbackController *controllers.FeedbackController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	router.GET(controllers.LoginPath, authController.ShowLogin)
	router.POST(controllers.LoginPath, authController.Login)
	router.GET("/logout", authController.Logout)

	// --- Student routes ---
	feedback := router.Group(controllers.FeedbackPath)
	feedback.Use(authMiddleware.SessionRequired(models.RoleStudent))
	{
		feedback.GET("", feedbackController.ShowForm)
		feedback.POST("", feedbackController.Submit)
	}

	// --- Dashboard routes ---
	// Any session may reach /dashboard; the controller sends students back to /feedback.
	dashboard := router.Group(controllers.DashboardPath)
	dashboard.Use(authMiddleware.SessionRequired())
	{
		dashboard.GET("", dashboardController.Show)
		dashboard.GET("/export", authMiddleware.SessionRequired(models.FacultyRoles...), dashboardController.Export)
	}
}
