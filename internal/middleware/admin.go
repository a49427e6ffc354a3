package middleware

import (
	"net/http"

	"github.com/baajeelectronics/baaje-golang/internal/auth"
	"github.com/gin-gonic/gin"
)

// RequireAdmin runs after RequireUser and asks the policy whether this
// identity may perform privileged operations. A valid token with the wrong
// identity is a 403, not a 401.
func RequireAdmin(policy auth.AdminPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("userID")

		ok, err := policy.IsAdmin(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Admin check failed"})
			c.Abort()
			return
		}
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
