package middleware

import (
	"net/http"

	"coworking/utils"

	"github.com/gin-gonic/gin"
)

// RequireAdmin must run after JWTAuthUserMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != utils.RoleAdmin {
			utils.JSONError(c, http.StatusForbidden, "forbidden", "Unauthorized admin access")
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
