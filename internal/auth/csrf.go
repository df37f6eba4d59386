package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"feebank/internal/models"
)

// CSRFMiddleware enforces double-submit CSRF protection for cookie-authenticated requests.
func (s *Service) CSRFMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requiresCSRFCheck(c.Request.Method) {
			c.Next()
			return
		}
		authHeader := c.GetHeader(s.headerName)
		if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			// bearer clients cannot be driven by a cross-site form
			c.Next()
			return
		}
		headerToken := c.GetHeader(s.csrfHeaderName)
		cookieToken, err := c.Cookie(s.csrfCookieName)
		if err != nil || headerToken == "" || cookieToken == "" ||
			subtle.ConstantTimeCompare([]byte(headerToken), []byte(cookieToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid csrf token"})
			return
		}
		c.Next()
	}
}

func requiresCSRFCheck(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	default:
		return true
	}
}

// SetSessionCookies writes the session cookie and the readable CSRF cookie.
func (s *Service) SetSessionCookies(c *gin.Context, session *models.Session, csrfToken string) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = int(s.sessionTTL.Seconds())
	}
	secure := gin.Mode() == gin.ReleaseMode
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     s.cookieName,
		Value:    session.Token,
		MaxAge:   maxAge,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     s.csrfCookieName,
		Value:    csrfToken,
		MaxAge:   maxAge,
		Path:     "/",
		Secure:   secure,
		HttpOnly: false,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookies expires both cookies on the client.
func (s *Service) ClearSessionCookies(c *gin.Context) {
	for _, name := range []string{s.cookieName, s.csrfCookieName} {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     name,
			Value:    "",
			MaxAge:   -1,
			Path:     "/",
			Secure:   gin.Mode() == gin.ReleaseMode,
			HttpOnly: name == s.cookieName,
			SameSite: http.SameSiteStrictMode,
		})
	}
}
