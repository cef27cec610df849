package http

import "github.com/gin-gonic/gin"

const bearerTokenKey = "bearer_token"

func setBearerToken(c *gin.Context, token string) {
	c.Set(bearerTokenKey, token)
}

func getBearerToken(c *gin.Context) (string, bool) {
	value, ok := c.Get(bearerTokenKey)
	if !ok {
		return "", false
	}
	token, ok := value.(string)
	return token, ok && token != ""
}
