package middleware

import (
	"net/http"
	"strings"

	"amora/utils"

	"github.com/gin-gonic/gin"
)

// RequesterKey is the gin context key the requester ID is stored under.
const RequesterKey = "requesterID"

// JWTAuthRequesterMiddleware resolves the requester identity from the
// bearer token and stores it on the context. It only establishes who is
// asking; authorization policy lives with the callers.
func JWTAuthRequesterMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		requesterID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || requesterID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		c.Set(RequesterKey, requesterID)
		c.Next()
	}
}

// RequesterID returns the authenticated requester from the context.
func RequesterID(c *gin.Context) string {
	if v, ok := c.Get(RequesterKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
