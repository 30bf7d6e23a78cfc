package utils

import "github.com/gin-gonic/gin"

const ClaimsKey = "claims"

// GetClaims returns the verified token claims attached by the auth middleware.
func GetClaims(c *gin.Context) *Claims {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil
	}
	claims, ok := v.(*Claims)
	if !ok {
		return nil
	}
	return claims
}

func GetUserRole(c *gin.Context) string {
	if claims := GetClaims(c); claims != nil {
		return claims.Role
	}
	return ""
}

func GetUserID(c *gin.Context) uint {
	if claims := GetClaims(c); claims != nil {
		return claims.UserID
	}
	return 0
}
