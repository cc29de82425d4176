package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ticketdesk/internal/shared/utils/response"
	"ticketdesk/pkg/logger"
)

const sessionTokenKey = "session_token"

// SessionValidator checks whether a bearer token belongs to a live
// admin session.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (bool, error)
}

// SessionAuth gates admin routes on session presence. The token itself
// is opaque to the gateway; authorization is the ticketing API's
// concern, the gateway only checks the session is known and alive.
type SessionAuth struct {
	sessions SessionValidator
	log      *logger.Logger
}

func NewSessionAuth(sessions SessionValidator, log *logger.Logger) *SessionAuth {
	return &SessionAuth{sessions: sessions, log: log}
}

// RequireSession rejects requests without a valid admin session.
func (a *SessionAuth) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header is required", nil)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}", nil)
			c.Abort()
			return
		}

		token := parts[1]
		ok, err := a.sessions.Validate(c.Request.Context(), token)
		if err != nil {
			a.log.LogAuthFailure(c.Request.Context(), "session store unavailable", c.ClientIP())
			response.Error(c, http.StatusServiceUnavailable, "Unable to verify session, please try again", nil)
			c.Abort()
			return
		}
		if !ok {
			a.log.LogAuthFailure(c.Request.Context(), "unknown or expired session", c.ClientIP())
			response.Error(c, http.StatusUnauthorized, "Session expired, please log in again", nil)
			c.Abort()
			return
		}

		c.Set(sessionTokenKey, token)
		c.Next()
	}
}

// SessionToken returns the validated bearer token for the current
// request, or empty outside session-gated routes.
func SessionToken(c *gin.Context) string {
	return c.GetString(sessionTokenKey)
}

// BearerToken extracts the raw bearer token without validating it.
// Used by logout, which must clear even unknown tokens.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// RequestID tags every request with an id for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// RequestLogger logs every request after it completes.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithRequestID(c.GetString("request_id")).LogHTTPRequest(c, time.Since(start))
	}
}
