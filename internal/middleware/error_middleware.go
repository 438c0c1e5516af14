package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/feedbackd/internal/pkg/apperrors"
	"github.com/yigit/feedbackd/internal/pkg/session"
)

// User-facing notices for service errors
const (
	NoticeInvalidCredentials = "Invalid credentials. Please try again."
	NoticeAlreadySubmitted   = "You have already submitted feedback for this teacher."
	NoticeUnexpected         = "Something went wrong. Please try again."
)

// HandlePageError turns err into the application's only failure channel: a flash
// notice followed by a redirect. Unexpected errors are logged, expected ones are not.
func HandlePageError(c *gin.Context, lgr zerolog.Logger, err error, redirectTo string) {
	var notice string
	switch {
	case apperrors.Is(err, apperrors.ErrInvalidCredentials, apperrors.ErrUnknownLoginType, apperrors.ErrValidationFailed):
		notice = NoticeInvalidCredentials
	case errors.Is(err, apperrors.ErrAlreadySubmitted):
		notice = NoticeAlreadySubmitted
	case errors.Is(err, apperrors.ErrNotAuthenticated):
		notice = NoticeLoginRequired
	case errors.Is(err, apperrors.ErrPermissionDenied):
		notice = NoticePermissionDenied
	default:
		lgr.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		notice = NoticeUnexpected
	}

	if flashErr := session.Flash(c, session.KindDanger, notice); flashErr != nil {
		lgr.Error().Err(flashErr).Msg("Failed to store flash notice")
	}
	c.Redirect(http.StatusFound, redirectTo)
}
