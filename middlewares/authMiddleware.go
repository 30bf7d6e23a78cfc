package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Bayu-x3/Washify-Backend/utils"
)

// AuthMiddleware authenticates the request via the Authorization header and
// attaches the verified claims to the request context.
func AuthMiddleware(maker *utils.TokenMaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			utils.SendError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		claims, err := maker.Verify(tokenStr)
		if err != nil {
			utils.SendError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(utils.ClaimsKey, claims)
		c.Next()
	}
}

// allows reports whether role is in the route's static allow-list.
func allows(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// RoleMiddleware authorizes the authenticated role against a per-route
// allow-list. It must run after AuthMiddleware.
func RoleMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !allows(utils.GetUserRole(c), roles) {
			utils.SendError(c, http.StatusForbidden, "Forbidden: Insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
