package middleware

import (
	"net/http"
	"strings"

	"coworking/models"
	"coworking/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// JWTAuthUserMiddleware requires a valid bearer token. When optional is true a
// missing token passes through anonymously, but an invalid one is still rejected.
func JWTAuthUserMiddleware(optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			if optional {
				c.Next()
				return
			}
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "Insufficient authorization")
			return
		}

		userID, role, err := utils.ExtractActorFromToken(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "Invalid token")
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, role)
		c.Next()
	}
}

// ActorFromContext returns the authenticated caller, or a zero Actor for
// anonymous requests.
func ActorFromContext(c *gin.Context) models.Actor {
	return models.Actor{
		UserID:     c.GetString(ContextUserID),
		Privileged: c.GetString(ContextRole) == utils.RoleAdmin,
	}
}
