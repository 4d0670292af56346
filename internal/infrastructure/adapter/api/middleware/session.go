package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderSessionID lets API clients carry the session without cookies
	HeaderSessionID = "X-Session-ID"

	// DefaultSessionCookie names the session cookie when none is configured
	DefaultSessionCookie = "fd_session"

	sessionIDKey = "session_id"
)

// SessionOptions configures the session cookie
type SessionOptions struct {
	CookieName string
	MaxAge     time.Duration
	Secure     bool
}

// Session resolves the caller's session id from the cookie or the X-Session-ID
// header. Missing or malformed ids are replaced with a fresh UUID, so every
// request reaching a handler has a session.
func Session(opts SessionOptions) gin.HandlerFunc {
	if opts.CookieName == "" {
		opts.CookieName = DefaultSessionCookie
	}

	return func(c *gin.Context) {
		id := c.GetHeader(HeaderSessionID)
		if id == "" {
			if cookie, err := c.Cookie(opts.CookieName); err == nil {
				id = cookie
			}
		}

		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(sessionIDKey, id)
		c.Writer.Header().Set(HeaderSessionID, id)
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     opts.CookieName,
			Value:    id,
			Path:     "/",
			MaxAge:   int(opts.MaxAge.Seconds()),
			Secure:   opts.Secure,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		c.Next()
	}
}

// SessionID returns the id assigned by Session
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
