package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// bearerMiddleware requires an Authorization header and stashes the token for
// handlers. The token is opaque here; the upstream provider validates it.
func bearerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "Missing Authorization header", nil))
			return
		}
		token := extractToken(header)
		if token == "" {
			abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "Missing bearer token", nil))
			return
		}
		setBearerToken(c, token)
		c.Next()
	}
}

// extractToken strips a "Bearer" scheme if present; other values pass through unchanged.
func extractToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	if strings.EqualFold(header, "Bearer") {
		return ""
	}
	return header
}
