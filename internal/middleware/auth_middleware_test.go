package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/feedbackd/internal/app/models"
	"github.com/yigit/feedbackd/internal/pkg/apperrors"
	"github.com/yigit/feedbackd/internal/pkg/session"
)

func newGateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(session.Middleware(session.Options{Name: "gate", Secret: "gate-secret", MaxAge: time.Hour}))

	gate := NewAuthMiddleware("/", zerolog.Nop())
	r.GET("/as/:role", func(c *gin.Context) {
		_ = session.Save(c, models.Principal{UserID: "U1", Name: "User", Role: models.Role(c.Param("role"))})
		c.Status(http.StatusNoContent)
	})
	r.GET("/student", gate.SessionRequired(models.RoleStudent), func(c *gin.Context) {
		c.String(http.StatusOK, "hello "+CurrentPrincipal(c).UserID)
	})
	r.GET("/any", gate.SessionRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, string(CurrentPrincipal(c).Role))
	})
	r.GET("/fail", func(c *gin.Context) {
		HandlePageError(c, zerolog.Nop(), errors.New(c.Query("msg")), "/back")
	})
	r.GET("/err/:kind", func(c *gin.Context) {
		HandlePageError(c, zerolog.Nop(), pageErrors[c.Param("kind")], "/feedback")
	})
	r.GET("/notices", func(c *gin.Context) {
		var out []string
		for _, n := range session.Flashes(c) {
			out = append(out, n.Kind+"="+n.Message)
		}
		c.String(http.StatusOK, strings.Join(out, "\n"))
	})
	return r
}

func do(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// lastCookies keeps the final Set-Cookie per name
func lastCookies(w *httptest.ResponseRecorder) []*http.Cookie {
	byName := map[string]*http.Cookie{}
	var order []string
	for _, ck := range w.Result().Cookies() {
		if _, seen := byName[ck.Name]; !seen {
			order = append(order, ck.Name)
		}
		byName[ck.Name] = ck
	}
	out := make([]*http.Cookie, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out
}

func TestSessionRequired(t *testing.T) {
	r := newGateRouter()

	tests := []struct {
		name       string
		role       string
		path       string
		wantStatus int
		wantNotice string
	}{
		{name: "anonymous", path: "/student", wantStatus: http.StatusFound, wantNotice: NoticeLoginRequired},
		{name: "anonymous any", path: "/any", wantStatus: http.StatusFound, wantNotice: NoticeLoginRequired},
		{name: "wrong role", role: "faculty", path: "/student", wantStatus: http.StatusFound, wantNotice: NoticePermissionDenied},
		{name: "right role", role: "student", path: "/student", wantStatus: http.StatusOK},
		{name: "any role", role: "hod", path: "/any", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cookies []*http.Cookie
			if tt.role != "" {
				cookies = lastCookies(do(r, "/as/"+tt.role, nil))
			}

			w := do(r, tt.path, cookies)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantNotice == "" {
				return
			}
			if loc := w.Header().Get("Location"); loc != "/" {
				t.Fatalf("Location = %q, want /", loc)
			}
			notices := do(r, "/notices", lastCookies(w)).Body.String()
			if notices != session.KindDanger+"="+tt.wantNotice {
				t.Errorf("notices = %q", notices)
			}
		})
	}
}

var pageErrors = map[string]error{
	"validation":  fmt.Errorf("%w: password required", apperrors.ErrValidationFailed),
	"credentials": apperrors.ErrInvalidCredentials,
	"logintype":   fmt.Errorf("%w: %w", apperrors.ErrInvalidCredentials, apperrors.ErrUnknownLoginType),
	"duplicate":   fmt.Errorf("%w: T1", apperrors.ErrAlreadySubmitted),
	"anonymous":   apperrors.ErrNotAuthenticated,
	"forbidden":   apperrors.ErrPermissionDenied,
}

func TestHandlePageError(t *testing.T) {
	r := newGateRouter()

	tests := []struct {
		kind   string
		notice string
	}{
		{"validation", NoticeInvalidCredentials},
		{"credentials", NoticeInvalidCredentials},
		{"logintype", NoticeInvalidCredentials},
		{"duplicate", NoticeAlreadySubmitted},
		{"anonymous", NoticeLoginRequired},
		{"forbidden", NoticePermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			w := do(r, "/err/"+tt.kind, nil)
			if w.Code != http.StatusFound || w.Header().Get("Location") != "/feedback" {
				t.Fatalf("got %d %q", w.Code, w.Header().Get("Location"))
			}
			if got := do(r, "/notices", lastCookies(w)).Body.String(); got != session.KindDanger+"="+tt.notice {
				t.Errorf("notice = %q, want %q", got, tt.notice)
			}
		})
	}
}

func TestHandlePageErrorHidesUnexpected(t *testing.T) {
	r := newGateRouter()

	w := do(r, "/fail?msg=db+down", nil)
	if w.Header().Get("Location") != "/back" {
		t.Fatalf("fail Location = %q", w.Header().Get("Location"))
	}
	got := do(r, "/notices", lastCookies(w)).Body.String()
	if got != "danger="+NoticeUnexpected {
		t.Errorf("unexpected-error notice = %q", got)
	}
	if strings.Contains(got, "db down") {
		t.Error("internal error text leaked to the page")
	}
}

func TestAllowed(t *testing.T) {
	if !Allowed(models.RoleHOD, nil) {
		t.Error("empty role list must admit everyone")
	}
	if !Allowed(models.RoleAdmin, models.FacultyRoles) {
		t.Error("admin is a faculty role")
	}
	if Allowed(models.RoleStudent, models.FacultyRoles) {
		t.Error("student admitted to faculty route")
	}
}
