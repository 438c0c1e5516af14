package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/feedbackd/internal/app/models"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(Options{Name: "test_session", Secret: "0123456789abcdef0123456789abcdef", MaxAge: time.Hour}))

	r.GET("/save", func(c *gin.Context) {
		_ = Save(c, models.Principal{UserID: "S1", Name: "Asha", Role: models.RoleStudent, Class: "CSE-A"})
		c.Status(http.StatusNoContent)
	})
	r.GET("/whoami", func(c *gin.Context) {
		p, ok := Current(c)
		if !ok {
			c.String(http.StatusUnauthorized, "anonymous")
			return
		}
		c.String(http.StatusOK, p.UserID+"|"+p.Name+"|"+string(p.Role)+"|"+p.Class)
	})
	r.GET("/clear", func(c *gin.Context) {
		_ = Reset(c, Notice{Kind: KindSuccess, Message: "bye"})
		c.Status(http.StatusNoContent)
	})
	r.GET("/flashes", func(c *gin.Context) {
		out := ""
		for _, n := range Flashes(c) {
			out += n.Kind + "=" + n.Message + ";"
		}
		c.String(http.StatusOK, out)
	})
	return r
}

func serve(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSaveAndCurrent(t *testing.T) {
	r := newTestRouter()

	w := serve(r, "/whoami", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected anonymous, got %d %s", w.Code, w.Body.String())
	}

	w = serve(r, "/save", nil)
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	w = serve(r, "/whoami", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got, want := w.Body.String(), "S1|Asha|student|CSE-A"; got != want {
		t.Errorf("principal = %q, want %q", got, want)
	}
}

func TestResetKeepsNoticeForOneView(t *testing.T) {
	r := newTestRouter()
	cookies := serve(r, "/save", nil).Result().Cookies()

	cleared := serve(r, "/clear", cookies).Result().Cookies()

	if w := serve(r, "/whoami", cleared); w.Code != http.StatusUnauthorized {
		t.Errorf("expected session cleared, got %d %s", w.Code, w.Body.String())
	}

	w := serve(r, "/flashes", cleared)
	if got := w.Body.String(); got != "success=bye;" {
		t.Errorf("flashes = %q", got)
	}

	after := w.Result().Cookies()
	if got := serve(r, "/flashes", after).Body.String(); got != "" {
		t.Errorf("flash should be consumed, got %q", got)
	}
}
