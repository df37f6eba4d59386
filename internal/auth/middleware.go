package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"feebank/internal/models"
)

const (
	sessionContextKey   = "auth_session"
	authTokenContextKey = "auth_token"
)

// Middleware validates the session token and stores the session in the context.
// Requests without a live session are rejected with 401 so the client redirects to login.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authToken := s.extractToken(c)
		if authToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		session, err := s.Validate(c.Request.Context(), authToken)
		if err != nil {
			if errors.Is(err, ErrInvalidSession) || errors.Is(err, ErrSessionExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session lookup failed"})
			return
		}
		c.Set(sessionContextKey, session)
		c.Set(authTokenContextKey, authToken)
		c.Next()
	}
}

// SessionFromContext retrieves the session placed by the middleware.
func SessionFromContext(c *gin.Context) (*models.Session, bool) {
	val, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	session, ok := val.(*models.Session)
	return session, ok
}

// AuthTokenFromContext retrieves the session token captured by the middleware.
func AuthTokenFromContext(c *gin.Context) (string, bool) {
	val, ok := c.Get(authTokenContextKey)
	if !ok {
		return "", false
	}
	token, ok := val.(string)
	return token, ok
}

func (s *Service) extractToken(c *gin.Context) string {
	authHeader := c.GetHeader(s.headerName)
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	if token, err := c.Cookie(s.cookieName); err == nil && token != "" {
		return token
	}
	return ""
}
