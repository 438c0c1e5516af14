// Package session keeps the authenticated principal and flash notices in a
// cookie-backed gin-contrib session.
package session

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/yigit/feedbackd/internal/app/models"
)

const (
	keyUserID = "user_id"
	keyName   = "name"
	keyRole   = "role"
	keyClass  = "class"
)

// Notice kinds
const (
	KindSuccess = "success"
	KindDanger  = "danger"
)

// Notice is a one-shot message shown on the next rendered page
type Notice struct {
	Kind    string
	Message string
}

// Options configures the cookie store
type Options struct {
	Name   string
	Secret string
	MaxAge time.Duration
	Secure bool
}

// Middleware installs the session store on the router
func Middleware(opts Options) gin.HandlerFunc {
	store := cookie.NewStore([]byte(opts.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(opts.MaxAge / time.Second),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(opts.Name, store)
}

// Save replaces the session contents with p
func Save(c *gin.Context, p models.Principal) error {
	s := sessions.Default(c)
	s.Clear()
	s.Set(keyUserID, p.UserID)
	s.Set(keyName, p.Name)
	s.Set(keyRole, string(p.Role))
	if p.Class != "" {
		s.Set(keyClass, p.Class)
	}
	if err := s.Save(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Current returns the session principal, if any
func Current(c *gin.Context) (models.Principal, bool) {
	s := sessions.Default(c)
	userID, ok := s.Get(keyUserID).(string)
	if !ok || userID == "" {
		return models.Principal{}, false
	}
	p := models.Principal{UserID: userID}
	p.Name, _ = s.Get(keyName).(string)
	role, _ := s.Get(keyRole).(string)
	p.Role = models.Role(role)
	p.Class, _ = s.Get(keyClass).(string)
	return p, true
}

// Reset drops every session value and queues the given notices in a single save.
// Calling it without a session is a no-op apart from the notices.
func Reset(c *gin.Context, notices ...Notice) error {
	s := sessions.Default(c)
	s.Clear()
	for _, n := range notices {
		s.AddFlash(n.Kind + ":" + n.Message)
	}
	if err := s.Save(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Flash queues a notice for the next page view
func Flash(c *gin.Context, kind, message string) error {
	s := sessions.Default(c)
	s.AddFlash(kind + ":" + message)
	if err := s.Save(); err != nil {
		return fmt.Errorf("failed to save flash: %w", err)
	}
	return nil
}

// Flashes pops all pending notices
func Flashes(c *gin.Context) []Notice {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = s.Save()

	notices := make([]Notice, 0, len(raw))
	for _, v := range raw {
		str, ok := v.(string)
		if !ok {
			continue
		}
		kind, msg, found := strings.Cut(str, ":")
		if !found {
			kind, msg = KindSuccess, str
		}
		notices = append(notices, Notice{Kind: kind, Message: msg})
	}
	return notices
}
