package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasknest-server/database"
	"tasknest-server/models"
	"tasknest-server/types"
	"tasknest-server/utils"
	"tasknest-server/websocket"
)

// RegisterWebSocketRoutes registers the admin live booking feed.
// Browsers cannot set headers on WebSocket handshakes, so the token
// is passed as a query parameter instead of an Authorization header.
func RegisterWebSocketRoutes(router *gin.RouterGroup, hub *websocket.Hub) {
	router.GET("/ws/admin", func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, types.Error("Authentication token required"))
			return
		}

		claims, err := utils.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, types.Error("Invalid or expired token"))
			return
		}

		var user models.User
		if err := database.DB.First(&user, claims.UserID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, types.Error("User not found"))
			return
		}
		if !user.IsActive {
			c.JSON(http.StatusUnauthorized, types.Error("Account is disabled"))
			return
		}
		if !user.IsAdmin() {
			c.JSON(http.StatusForbidden, types.Error("Admin access required"))
			return
		}

		websocket.ServeAdminFeed(hub, c.Writer, c.Request, user.ID)
	})
}
