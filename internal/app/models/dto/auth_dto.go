package dto

import "github.com/yigit/feedbackd/internal/app/models"

// LoginRequest represents the login form. Fields are only checked for presence.
type LoginRequest struct {
	LoginType models.LoginType `form:"login_type" binding:"required"`
	Username  string           `form:"username" binding:"required"`
	Password  string           `form:"password" binding:"required"`
}
