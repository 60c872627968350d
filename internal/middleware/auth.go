package middleware

import (
	"net/http"

	"fishmarket-be/internal/auth"
	"fishmarket-be/internal/principal"

	"github.com/gin-gonic/gin"
)

// Authenticate parses the access token and sets the principal into the
// request context. Anonymous requests pass through with no principal; route
// handlers that need one use RequirePrincipal.
func Authenticate(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := auth.ExtractAccessToken(c.Request)
		if tokenStr == "" {
			c.Next()
			return
		}

		p, err := auth.ParseJWT(tokenStr, jwtSecret)
		if err != nil {
			c.Next()
			return
		}

		ctx := principal.WithPrincipal(c.Request.Context(), p)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequirePrincipal rejects requests that carry no valid principal.
func RequirePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := principal.FromContext(c.Request.Context()); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}
