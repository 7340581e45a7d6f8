package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tasknest-server/database"
	"tasknest-server/models"
	"tasknest-server/types"
)

// RegisterAdminServiceRoutes registers admin service management routes
func RegisterAdminServiceRoutes(router *gin.RouterGroup) {
	router.GET("/services", listAllServices)
	router.POST("/services", createService)
	router.PUT("/services/:id", updateService)
	router.DELETE("/services/:id", deleteService)
	router.POST("/services/:id/image", uploadServiceImage)
}

// listAllServices returns every service for the admin panel
func listAllServices(c *gin.Context) {
	var services []models.Service
	if err := database.DB.Order("id").Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, types.Error("Failed to fetch services"))
		return
	}

	c.JSON(http.StatusOK, types.Success("Services retrieved", services))
}

// createService creates a new service
func createService(c *gin.Context) {
	var req models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.Error("Missing required fields"))
		return
	}

	serviceType := models.ServiceType(req.Type)
	if !serviceType.IsValid() {
		c.JSON(http.StatusBadRequest, types.ErrorWithFields("Validation error",
			map[string][]string{"type": {"Unknown service type: " + req.Type}}))
		return
	}

	service := models.Service{
		Name:            req.Name,
		Type:            serviceType,
		StartingPrice:   req.StartingPrice,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Included:        datatypes.NewJSONSlice(req.Included),
		Excluded:        datatypes.NewJSONSlice(req.Excluded),
		Image:           req.Image,
	}

	if err := database.DB.Create(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, types.Error("Service with this type already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, types.Error("Failed to create service"))
		return
	}

	c.JSON(http.StatusCreated, types.Success("Service created successfully", service))
}

// updateService updates an existing service
func updateService(c *gin.Context) {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.Error("Invalid service ID"))
		return
	}

	var req models.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.Error("Validation error: "+err.Error()))
		return
	}

	var service models.Service
	if err := database.DB.First(&service, serviceID).Error; err != nil {
		c.JSON(http.StatusNotFound, types.Error("Service not found"))
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Type != nil {
		serviceType := models.ServiceType(*req.Type)
		if !serviceType.IsValid() {
			c.JSON(http.StatusBadRequest, types.ErrorWithFields("Validation error",
				map[string][]string{"type": {"Unknown service type: " + *req.Type}}))
			return
		}
		service.Type = serviceType
	}
	if req.StartingPrice != nil {
		service.StartingPrice = *req.StartingPrice
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.LongDescription != nil {
		service.LongDescription = req.LongDescription
	}
	if req.Included != nil {
		service.Included = datatypes.NewJSONSlice(req.Included)
	}
	if req.Excluded != nil {
		service.Excluded = datatypes.NewJSONSlice(req.Excluded)
	}
	if req.Image != nil {
		service.Image = req.Image
	}

	if err := database.DB.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, types.Error("Failed to update service"))
		return
	}

	c.JSON(http.StatusOK, types.Success("Service updated successfully", service))
}

// deleteService deletes a service
func deleteService(c *gin.Context) {
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

	if err := database.DB.Delete(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, types.Error("Failed to delete service"))
		return
	}

	c.JSON(http.StatusOK, types.Success("Service deleted successfully", nil))
}
