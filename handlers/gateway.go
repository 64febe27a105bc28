package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShreeanshSachan/Cant-think-of-a-name/internal/auth"
	"github.com/ShreeanshSachan/Cant-think-of-a-name/internal/users"
	"github.com/ShreeanshSachan/Cant-think-of-a-name/pkg/logger"
	"github.com/ShreeanshSachan/Cant-think-of-a-name/pkg/metrics"
	"github.com/ShreeanshSachan/Cant-think-of-a-name/pkg/middleware"
)

// SignupRequest is the registration payload. The email field is
// informational only: the stored email always comes from the verified
// token claims.
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	IDToken  string `json:"idToken" binding:"required"`
}

// GatewayHandler holds dependencies for the gateway routes.
type GatewayHandler struct {
	verifier auth.Verifier
	usersSvc *users.Service
	resolver *auth.Resolver
}

func NewGatewayHandler(v auth.Verifier, u *users.Service) *GatewayHandler {
	return &GatewayHandler{verifier: v, usersSvc: u, resolver: auth.NewResolver(v, u)}
}

// Register wires the gateway routes onto the router group.
func (h *GatewayHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/signup", h.Signup)

	authed := rg.Group("/", middleware.RequireUser(h.resolver))
	authed.GET("/protected-endpoint", h.Protected)
	authed.GET("/admin-only", middleware.RequireRole("admin"), h.AdminOnly)
	authed.GET("/me", h.Me)
}

// Signup verifies the submitted ID token and creates the account for its
// subject id. Registration is not idempotent: a second signup for the same
// identity answers 409 and leaves the stored document untouched.
func (h *GatewayHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := h.verifier.Verify(c.Request.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, auth.ErrVerifier) {
			metrics.Signups.WithLabelValues("internal_error").Inc()
			logger.Errorf("signup: token verification unavailable: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "an internal error occurred"})
			return
		}
		metrics.Signups.WithLabelValues("invalid_token").Inc()
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid ID token"})
		return
	}
	if claims.Subject == "" {
		metrics.Signups.WithLabelValues("invalid_token").Inc()
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid ID token"})
		return
	}

	// email comes from the verified claims, not from the request body
	_, err = h.usersSvc.Register(c.Request.Context(), claims.Subject, req.Username, claims.Email)
	if err != nil {
		if errors.Is(err, users.ErrAlreadyExists) {
			metrics.Signups.WithLabelValues("conflict").Inc()
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		metrics.Signups.WithLabelValues("internal_error").Inc()
		logger.Errorf("signup: failed to persist user %q: %v", claims.Subject, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an internal error occurred"})
		return
	}

	metrics.Signups.WithLabelValues("created").Inc()
	c.JSON(http.StatusCreated, gin.H{"message": "User successfully registered.", "user_id": claims.Subject})
}

// Protected is open to any resolved account regardless of role.
func (h *GatewayHandler) Protected(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"message": "Hello, you are authorized!", "user_data": u})
}

// AdminOnly runs behind RequireRole("admin").
func (h *GatewayHandler) AdminOnly(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"message": "Welcome, Admin!", "user_data": u})
}

// Me returns the resolved account wrapped under a "user" key.
func (h *GatewayHandler) Me(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"user": u})
}
