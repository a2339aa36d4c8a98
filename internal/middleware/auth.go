package middleware

import (
	"net/http"
	"strings"

	"chokokon/internal/session"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// Guard resolves session tokens carried in the Authorization header or the
// session cookie.
type Guard struct {
	Sessions   *session.Manager
	CookieName string
	LoginPath  string
	HomePath   string
}

func (g Guard) token(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if tokenString := strings.TrimPrefix(authHeader, "Bearer "); tokenString != authHeader {
			return tokenString
		}
	}
	if cookie, err := c.Cookie(g.CookieName); err == nil {
		return cookie
	}
	return ""
}

func (g Guard) resolve(c *gin.Context) (session.Session, bool) {
	tokenString := g.token(c)
	if tokenString == "" {
		return session.Session{}, false
	}
	s, err := g.Sessions.Resolve(tokenString)
	if err != nil {
		return session.Session{}, false
	}
	return s, true
}

// RequireSession rejects API calls without a live session.
func (g Guard) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if g.token(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session token required"})
			return
		}
		s, ok := g.resolve(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

// RequirePage sends visitors without a session to the login page.
func (g Guard) RequirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := g.resolve(c)
		if !ok {
			c.Redirect(http.StatusFound, g.LoginPath)
			c.Abort()
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

// RedirectIfAuthenticated sends signed-in visitors of the login page to the
// dashboard.
func (g Guard) RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := g.resolve(c); ok {
			c.Redirect(http.StatusFound, g.HomePath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session stored by a guard for this request.
func CurrentSession(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return session.Session{}, false
	}
	s, ok := v.(session.Session)
	return s, ok
}
