package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"tasknest-server/database"
	"tasknest-server/models"
	"tasknest-server/types"
	"tasknest-server/utils"
)

// AuthMiddleware validates JWT tokens and sets the user in the request context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c, c.GetHeader("Authorization"))
		if !ok {
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}

// AdminAuthMiddleware requires a valid token belonging to an active admin.
// Non-admins get 403 with no handler reached, so no state can change.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c, c.GetHeader("Authorization"))
		if !ok {
			return
		}

		if !user.IsAdmin() {
			log.Warn().Uint("user_id", user.ID).Str("role", string(user.Role)).
				Str("path", c.Request.URL.Path).Msg("admin access denied")
			c.JSON(http.StatusForbidden, types.Error("Forbidden - Insufficient permissions"))
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}

// authenticate resolves the bearer token to an active user. On failure it
// writes the 401 response and reports false.
func authenticate(c *gin.Context, authHeader string) (models.User, bool) {
	var user models.User

	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, types.Error("Unauthorized - No valid token"))
		c.Abort()
		return user, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		c.JSON(http.StatusUnauthorized, types.Error("Unauthorized - Token must be in format: Bearer <token>"))
		c.Abort()
		return user, false
	}

	claims, err := utils.VerifyToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, types.Error("Unauthorized - Token is invalid or expired"))
		c.Abort()
		return user, false
	}

	if err := database.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, types.Error("Unauthorized - User not found"))
		c.Abort()
		return user, false
	}

	if !user.IsActive {
		c.JSON(http.StatusUnauthorized, types.Error("Unauthorized - Account is deactivated"))
		c.Abort()
		return user, false
	}

	return user, true
}
