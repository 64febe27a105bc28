package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShreeanshSachan/Cant-think-of-a-name/internal/auth"
	"github.com/ShreeanshSachan/Cant-think-of-a-name/internal/models"
	"github.com/ShreeanshSachan/Cant-think-of-a-name/pkg/logger"
	"github.com/ShreeanshSachan/Cant-think-of-a-name/pkg/metrics"
)

// userKey is where the resolved account is stored in the Gin context.
const userKey = "user"

// RequireUser returns a middleware that resolves the request's bearer
// credential to an account and aborts with the matching status when it
// cannot: 401 for missing/invalid credentials (with a Bearer challenge),
// 404 for a valid identity without an account, 500 for verifier or store
// failures. The response body for 500 stays generic; the cause goes to the
// server log only.
func RequireUser(r *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := r.Resolve(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			abortResolveError(c, err)
			return
		}
		metrics.AuthDecisions.WithLabelValues("authorized").Inc()
		c.Set(userKey, u)
		c.Next()
	}
}

// RequireRole returns a middleware enforcing an exact role match on the
// already-resolved account. Must run after RequireUser.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			metrics.AuthDecisions.WithLabelValues("internal_error").Inc()
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "an internal error occurred"})
			return
		}
		if u.Role != role {
			metrics.AuthDecisions.WithLabelValues("forbidden").Inc()
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "you do not have permission to access this resource"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the account resolved by RequireUser.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}

func abortResolveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrNoCredential):
		metrics.AuthDecisions.WithLabelValues("no_credential").Inc()
		c.Header("WWW-Authenticate", "Bearer")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no authorization token provided"})
	case errors.Is(err, auth.ErrInvalidCredential):
		metrics.AuthDecisions.WithLabelValues("invalid_credential").Inc()
		c.Header("WWW-Authenticate", "Bearer")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication credentials"})
	case errors.Is(err, auth.ErrUnknownUser):
		metrics.AuthDecisions.WithLabelValues("unknown_user").Inc()
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "user not found"})
	default:
		// verifier transport failure or store failure; log the cause but
		// keep the response body generic
		metrics.AuthDecisions.WithLabelValues("internal_error").Inc()
		logger.Errorf("auth resolution failed: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "an internal error occurred"})
	}
}
