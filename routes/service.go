package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tasknest-server/database"
	"tasknest-server/models"
	"tasknest-server/types"
)

// RegisterServiceRoutes registers the public service catalogue routes
func RegisterServiceRoutes(router *gin.RouterGroup) {
	router.GET("", listServices)
	router.GET("/:id", getService)
}

// listServices returns all services, optionally filtered by type
func listServices(c *gin.Context) {
	query := database.DB.Order("id")
	if serviceType := c.Query("type"); serviceType != "" {
		query = query.Where("type = ?", serviceType)
	}

	var services []models.Service
	if err := query.Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, types.Error("Failed to fetch services"))
		return
	}

	c.JSON(http.StatusOK, types.Success("Services retrieved", services))
}

// getService returns a specific service by ID
func getService(c *gin.Context) {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.Error("Invalid service ID"))
		return
	}

	var service models.Service
	if err := database.DB.First(&service, serviceID).Error; err != nil {
		c.JSON(http.StatusNotFound, types.Error("Service not found"))
		return
	}

	c.JSON(http.StatusOK, types.Success("Service retrieved", service))
}
