package routes

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"tasknest-server/config"
	"tasknest-server/database"
	"tasknest-server/models"
	"tasknest-server/types"
)

// validateImageFile validates extension and size (<= 5MB)
func validateImageFile(h *multipart.FileHeader) bool {
	if h == nil || h.Size <= 0 || h.Size > 5*1024*1024 {
		return false
	}
	ext := strings.ToLower(filepath.Ext(h.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	default:
		return false
	}
}

// uploadServiceImage uploads a service image to Cloudinary and stores the
// returned URL on the service record
func uploadServiceImage(c *gin.Context) {
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

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.Error("No image file provided"))
		return
	}
	if !validateImageFile(header) {
		c.JSON(http.StatusBadRequest, types.Error("Image must be jpg, png or webp and at most 5MB"))
		return
	}

	cfg := config.AppConfig.Cloudinary
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		c.JSON(http.StatusInternalServerError, types.Error("Media uploads are not configured"))
		return
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		log.Error().Err(err).Msg("cloudinary init failed")
		c.JSON(http.StatusInternalServerError, types.Error("Failed to upload image"))
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.Error("Failed to read image"))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   "tasknest/services",
		PublicID: fmt.Sprintf("service_%d", service.ID),
	})
	if err != nil {
		log.Error().Err(err).Uint("service_id", service.ID).Msg("cloudinary upload failed")
		c.JSON(http.StatusInternalServerError, types.Error("Failed to upload image"))
		return
	}

	service.Image = &result.SecureURL
	if err := database.DB.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, types.Error("Failed to save image URL"))
		return
	}

	c.JSON(http.StatusOK, types.Success("Image uploaded successfully", service))
}
