package main

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
)

// apiKeyMiddleware guards the mutating scene endpoint. The key comes from the
// api_key query parameter (worker convention) or the X-API-Key header.
func apiKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Query("api_key")
		if key == "" {
			key = c.GetHeader("X-API-Key")
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.APIKey)) != 1 {
			abortWithError(c, errUnauthorized, "path", c.FullPath())
			return
		}
		c.Next()
	}
}
