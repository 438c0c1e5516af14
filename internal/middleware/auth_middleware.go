package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/feedbackd/internal/app/models"
	"github.com/yigit/feedbackd/internal/pkg/apperrors"
	"github.com/yigit/feedbackd/internal/pkg/session"
)

const principalKey = "principal"

// Notices shown by the gate
const (
	NoticeLoginRequired    = "Please log in to access this page."
	NoticePermissionDenied = "You do not have permission to access this page."
)

// AuthMiddleware guards pages by session presence and role
type AuthMiddleware struct {
	loginPath string
	logger    zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware redirecting failures to loginPath
func NewAuthMiddleware(loginPath string, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{loginPath: loginPath, logger: logger}
}

// SessionRequired admits a request only when a principal is in the session and, if
// roles are given, the principal's role is one of them. Failure is always a flash
// notice plus a redirect to the login page.
func (m *AuthMiddleware) SessionRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := session.Current(c)
		if !ok {
			m.reject(c, apperrors.ErrNotAuthenticated)
			return
		}

		if !Allowed(p.Role, roles) {
			m.reject(c, apperrors.ErrPermissionDenied)
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

func (m *AuthMiddleware) reject(c *gin.Context, err error) {
	HandlePageError(c, m.logger, err, m.loginPath)
	c.Abort()
}

// Allowed is the single authorization predicate: an empty role list admits everyone.
func Allowed(role models.Role, roles []models.Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if role == r {
			return true
		}
	}
	return false
}

// CurrentPrincipal returns the principal stored by SessionRequired
func CurrentPrincipal(c *gin.Context) models.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(models.Principal); ok {
			return p
		}
	}
	p, _ := session.Current(c)
	return p
}
