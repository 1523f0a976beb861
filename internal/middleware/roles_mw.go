package middleware

import (
	"net/http"
	"slices"

	"agrisetu/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware to check for specific user roles
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Role not found in token"})
			return
		}

		userRole, ok := roleVal.(string)
		if !ok || !slices.Contains(allowedRoles, userRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Not authorized"})
			return
		}

		c.Next()
	}
}

// CustomerMiddleware allows only customers through
func CustomerMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleCustomer)
}

// FarmerMiddleware allows only farmers through
func FarmerMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleFarmer)
}
