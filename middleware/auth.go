package middleware

import (
	"net/http"
	"strings"

	"devmitra/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by JWTAuthMiddleware for downstream handlers.
const (
	IdentityIDKey   = "identityID"
	IdentityRoleKey = "identityRole"
)

// JWTAuthMiddleware validates the Bearer token and stores the caller's id
// and role on the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Message: "Missing or malformed authorization header",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		id, role, err := utils.IdentityFromToken(tokenString)
		if err != nil || id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(IdentityIDKey, id)
		c.Set(IdentityRoleKey, role)
		c.Next()
	}
}

// IdentityID returns the authenticated caller's user id from the context.
func IdentityID(c *gin.Context) string {
	if v, ok := c.Get(IdentityIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
