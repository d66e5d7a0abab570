package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ecowaste-be/models"
	authUtils "ecowaste-be/utils"
)

// AuthMiddleware validates the bearer token and stores the caller's identity
// on the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			c.Abort()
			return
		}

		tokenString := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = authHeader[7:]
		}

		userID, role, err := authUtils.ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("role", string(role))

		c.Next()
	}
}

// RequireCapability gates a route on the caller's role capability set.
func RequireCapability(cap models.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, _ := c.Get("role")
		roleStr, _ := roleVal.(string)
		role, ok := models.ParseRole(roleStr)
		if !ok || !role.Can(cap) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Your role does not permit this action"})
			c.Abort()
			return
		}
		c.Next()
	}
}
