package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chokokon/internal/metrics"
	"chokokon/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newGuard() Guard {
	return Guard{
		Sessions:   session.NewManager("test-secret", time.Hour, session.Credentials{}),
		CookieName: "sid",
		LoginPath:  "/login",
		HomePath:   "/dashboard",
	}
}

func guardedRouter(g Guard) *gin.Engine {
	r := gin.New()
	r.GET("/api", g.RequireSession(), func(c *gin.Context) {
		s, ok := CurrentSession(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, s.Username)
	})
	r.GET("/dashboard", g.RequirePage(), func(c *gin.Context) { c.String(http.StatusOK, "dash") })
	r.GET("/login", g.RedirectIfAuthenticated(), func(c *gin.Context) { c.String(http.StatusOK, "login") })
	return r
}

func do(r http.Handler, path string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGuardsWithoutSession(t *testing.T) {
	r := guardedRouter(newGuard())

	if w := do(r, "/api", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	w := do(r, "/dashboard", nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", w.Code, w.Header().Get("Location"))
	}
	if w := do(r, "/login", nil); w.Code != http.StatusOK {
		t.Fatalf("login page should render without a session, got %d", w.Code)
	}
	if w := do(r, "/api", func(req *http.Request) { req.Header.Set("Authorization", "Bearer junk") }); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bad token, got %d", w.Code)
	}
}

func TestGuardsWithSession(t *testing.T) {
	g := newGuard()
	r := guardedRouter(g)
	s, token, err := g.Sessions.Login("ana", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	w := do(r, "/api", func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token) })
	if w.Code != http.StatusOK || w.Body.String() != "ana" {
		t.Fatalf("expected session user, got %d %q", w.Code, w.Body.String())
	}
	withCookie := func(req *http.Request) { req.AddCookie(&http.Cookie{Name: "sid", Value: token}) }
	if w := do(r, "/dashboard", withCookie); w.Code != http.StatusOK {
		t.Fatalf("cookie session should open the dashboard, got %d", w.Code)
	}
	w = do(r, "/login", withCookie)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %d", w.Code)
	}

	g.Sessions.Logout(s.ID)
	if w := do(r, "/api", withCookie); w.Code != http.StatusUnauthorized {
		t.Fatalf("revoked session should be rejected, got %d", w.Code)
	}
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	rec := metrics.New(nil)
	r := gin.New()
	r.Use(Metrics(rec))
	r.GET("/orders/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	do(r, "/orders/1", nil)
	do(r, "/orders/2", nil)
	do(r, "/nowhere", nil)

	n, err := testutil.GatherAndCount(rec.Registry(), "chokokon_http_requests_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 series (route and unmatched), got %d", n)
	}
}
