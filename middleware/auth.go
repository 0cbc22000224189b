// Package middleware holds the gin middleware guarding the employee API.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/utils"
)

// AuthMiddleware validates the bearer token and puts the employee claims
// into the request context. 401 responses use the same error envelope as
// everything else so the client's refresh flow can key off the status.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.JSONError(c, http.StatusUnauthorized, "error.missingToken", "authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.JSONError(c, http.StatusUnauthorized, "error.malformedToken", "authorization header must be a bearer token")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "error.invalidOrExpiredToken", "token is invalid or expired")
			c.Abort()
			return
		}

		c.Set("employeeID", claims.EmployeeID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}
