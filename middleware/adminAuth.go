package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"branchly/config"
	"branchly/utils"
)

// JWTAuthAdminMiddleware guards the admin API. It expects a bearer token
// issued by the login endpoint and signed with the configured secret, whose
// subject matches the configured admin identity.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, err := utils.ExtractSubjectFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if subject != config.AppConfig.AdminEmail {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminEmail", subject)
		c.Set("isAdmin", true)
		c.Next()
	}
}
