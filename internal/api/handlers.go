package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"feebank/internal/auth"
	"feebank/internal/conversation"
	"feebank/internal/knowledge"
	"feebank/internal/portal"
)

// Handler wires HTTP routes to the session gate, the chat assistant and the portal views.
type Handler struct {
	auth       *auth.Service
	chats      *conversation.Registry
	portal     *portal.Service
	kb         *knowledge.Base
	generative bool
	limiter    *rateLimiter
	proxies    []string
	logger     *zap.Logger
}

type Options struct {
	// Generative reports whether replies may come from the generative model.
	Generative bool
	// ChatRateLimit caps chat requests per client per minute. Zero selects
	// DefaultChatRateLimit, a negative value disables the limit.
	ChatRateLimit int
	// TrustedProxies lists the proxies whose forwarding headers decide the
	// client IP. Empty trusts none, so the peer address is used.
	TrustedProxies []string
	Logger         *zap.Logger
}

// NewHandler constructs a Handler instance.
func NewHandler(authService *auth.Service, chats *conversation.Registry, portalService *portal.Service, kb *knowledge.Base, opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if kb == nil {
		kb = knowledge.Default()
	}
	var limiter *rateLimiter
	switch {
	case opts.ChatRateLimit == 0:
		limiter = newRateLimiter(DefaultChatRateLimit, DefaultChatRateWindow)
	case opts.ChatRateLimit > 0:
		limiter = newRateLimiter(opts.ChatRateLimit, DefaultChatRateWindow)
	}
	return &Handler{
		auth:       authService,
		chats:      chats,
		portal:     portalService,
		kb:         kb,
		generative: opts.Generative,
		limiter:    limiter,
		proxies:    opts.TrustedProxies,
		logger:     logger,
	}
}

// NewRouter builds a gin engine with request logging, recovery and all routes.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	if err := router.SetTrustedProxies(h.proxies); err != nil {
		h.logger.Warn("invalid trusted proxies, trusting none", zap.Strings("proxies", h.proxies), zap.Error(err))
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(zapLoggerMiddleware(h.logger), gin.Recovery())
	h.RegisterRoutes(router)
	return router
}

// RegisterRoutes attaches all HTTP routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/healthz", h.health)

	api := router.Group("/api")
	api.POST("/auth/login", h.login)
	api.GET("/knowledge", h.knowledgeFacts)

	chat := api.Group("/chat")
	chat.GET("/faq", h.faq)
	chat.POST("/conversations", rateLimitMiddleware(h.limiter), h.createConversation)
	chat.GET("/conversations/:id", h.getConversation)
	chat.POST("/conversations/:id/messages", rateLimitMiddleware(h.limiter), h.postMessage)
	chat.DELETE("/conversations/:id", h.deleteConversation)

	protected := api.Group("")
	protected.Use(h.auth.Middleware(), h.auth.CSRFMiddleware())
	protected.GET("/session", h.currentSession)
	protected.POST("/auth/logout", h.logout)

	p := protected.Group("/portal")
	p.GET("/dashboard", h.dashboard)
	p.GET("/student", h.student)
	p.GET("/fees", h.fees)
	p.GET("/transactions", h.transactions)
	p.GET("/attendance", h.attendance)
	p.GET("/timetable", h.timetable)
	p.GET("/lectures", h.lectures)
	p.GET("/assignments", h.assignments)
	p.GET("/updates", h.updates)
	p.GET("/feedback", h.feedback)
	p.POST("/feedback", h.submitFeedback)
	p.GET("/undertakings", h.undertakings)
	p.POST("/undertakings", h.submitUndertaking)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"generative":    h.generative,
		"conversations": h.chats.Len(),
	})
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	session, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "issue session failed"})
		return
	}
	csrfToken, err := h.auth.NewCSRFToken()
	if err != nil {
		h.logger.Error("issue csrf token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "issue session failed"})
		return
	}
	h.auth.SetSessionCookies(c, session, csrfToken)
	h.logger.Info("student logged in", zap.String("student_id", session.StudentID))
	c.JSON(http.StatusOK, gin.H{
		"student_id": session.StudentID,
		"username":   session.Username,
		"expires_at": session.ExpiresAt,
		"auth_token": session.Token,
		"csrf_token": csrfToken,
	})
}

func (h *Handler) logout(c *gin.Context) {
	if session, ok := auth.SessionFromContext(c); ok {
		h.portal.Refresh(session.StudentID)
	}
	if token, ok := auth.AuthTokenFromContext(c); ok {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			h.logger.Warn("logout failed", zap.Error(err))
		}
	}
	h.auth.ClearSessionCookies(c)
	c.Status(http.StatusNoContent)
}

func (h *Handler) currentSession(c *gin.Context) {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"student_id": session.StudentID,
		"username":   session.Username,
		"created_at": session.CreatedAt,
		"expires_at": session.ExpiresAt,
		"expires_in": int(time.Until(session.ExpiresAt).Seconds()),
	})
}

func (h *Handler) knowledgeFacts(c *gin.Context) {
	c.JSON(http.StatusOK, h.kb.Facts())
}

func (h *Handler) faq(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"faq": h.kb.FAQ()})
}
