// README: Firebase bearer-token auth middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taxigo/internal/infra"
)

const (
	ctxKeyUID   = "auth.uid"
	ctxKeyEmail = "auth.email"
)

// Auth verifies the Authorization bearer token and stores the caller's
// UID and email claim in the request context. Handlers read identity
// from here only, never from the request body.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token, err := verifier.VerifyIDToken(c.Request.Context(), strings.TrimPrefix(header, prefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(ctxKeyUID, token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			c.Set(ctxKeyEmail, email)
		}
		c.Next()
	}
}

// CallerUID returns the authenticated caller's UID, or "" when the auth
// middleware did not run.
func CallerUID(c *gin.Context) string {
	return c.GetString(ctxKeyUID)
}

// CallerEmail returns the authenticated caller's email claim; may be "".
func CallerEmail(c *gin.Context) string {
	return c.GetString(ctxKeyEmail)
}
