package handler

import (
	"errors"
	"net/http"
	"time"

	"chokokon/internal/metrics"
	"chokokon/internal/middleware"
	"chokokon/internal/session"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	Sessions   *session.Manager
	CookieName string
	// LoginDelay is a fixed pause before every login answer.
	LoginDelay   time.Duration
	SecureCookie bool
	Metrics      *metrics.Recorder
}

func (h *AuthHandler) observe(result string) {
	if h.Metrics != nil {
		h.Metrics.ObserveLogin(result)
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.observe("invalid")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	if h.LoginDelay > 0 {
		select {
		case <-time.After(h.LoginDelay):
		case <-c.Request.Context().Done():
			return
		}
	}

	s, token, err := h.Sessions.Login(req.Username, req.Password)
	switch {
	case errors.Is(err, session.ErrMissingCredentials):
		h.observe("invalid")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	case errors.Is(err, session.ErrBadCredentials):
		h.observe("denied")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	case err != nil:
		h.observe("error")
		respondError(c, err, "Failed to generate token")
		return
	}

	h.observe("success")
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.CookieName, token, int(h.Sessions.TTL().Seconds()), "/", "", h.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"session": s,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if s, ok := middleware.CurrentSession(c); ok {
		h.Sessions.Logout(s.ID)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.CookieName, "", -1, "/", "", h.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

func (h *AuthHandler) CurrentSession(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// LoginPage describes how to sign in. Signed-in visitors never reach it.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":        "Sign in to continue",
		"login_endpoint": "/api/v1/auth/login",
		"fields":         []string{"username", "password"},
	})
}
