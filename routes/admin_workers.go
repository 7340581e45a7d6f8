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

// RegisterAdminWorkerRoutes registers admin worker management routes
func RegisterAdminWorkerRoutes(router *gin.RouterGroup) {
	router.GET("/workers", listWorkers)
	router.GET("/workers/:id", getWorker)
	router.POST("/workers", createWorker)
	router.PUT("/workers/:id", updateWorker)
	router.DELETE("/workers/:id", deleteWorker)
}

// workerWithCount pairs a worker with its booking count for the admin list
type workerWithCount struct {
	models.Worker
	BookingCount int64 `json:"booking_count"`
}

// listWorkers returns all workers with their booking counts
func listWorkers(c *gin.Context) {
	var workers []models.Worker
	if err := database.DB.Order("created_at DESC").Find(&workers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, types.Error("Failed to fetch workers"))
		return
	}

	type countRow struct {
		WorkerID uint
		Count    int64
	}
	var rows []countRow
	database.DB.Model(&models.Booking{}).
		Select("worker_id, count(*) as count").
		Where("worker_id IS NOT NULL").
		Group("worker_id").
		Scan(&rows)
	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.WorkerID] = row.Count
	}

	result := make([]workerWithCount, 0, len(workers))
	for _, w := range workers {
		result = append(result, workerWithCount{Worker: w, BookingCount: counts[w.ID]})
	}

	c.JSON(http.StatusOK, types.Success("Workers retrieved", result))
}

// getWorker returns a specific worker by ID
func getWorker(c *gin.Context) {
	workerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.Error("Invalid worker ID"))
		return
	}

	var worker models.Worker
	if err := database.DB.First(&worker, workerID).Error; err != nil {
		c.JSON(http.StatusNotFound, types.Error("Worker not found"))
		return
	}

	c.JSON(http.StatusOK, types.Success("Worker retrieved", worker))
}

// createWorker creates a worker profile. New workers start INACTIVE and
// must be activated before they can be assigned to bookings.
func createWorker(c *gin.Context) {
	var req models.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.Error("Validation error: "+err.Error()))
		return
	}

	serviceTypes, fieldErrs := parseServiceTypes(req.ServiceTypes)
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, types.ErrorWithFields("Validation error", fieldErrs))
		return
	}

	worker := models.Worker{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		ServiceTypes: datatypes.NewJSONSlice(serviceTypes),
		HourlyRate:   req.HourlyRate,
		Status:       models.WorkerInactive,
		Bio:          req.Bio,
		Experience:   req.Experience,
	}

	if err := database.DB.Create(&worker).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, types.Error("Worker with this email already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, types.Error("Failed to create worker"))
		return
	}

	c.JSON(http.StatusCreated, types.Success("Worker created successfully", worker))
}

// updateWorker updates a worker's profile and status
func updateWorker(c *gin.Context) {
	workerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.Error("Invalid worker ID"))
		return
	}

	var req models.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.Error("Validation error: "+err.Error()))
		return
	}

	var worker models.Worker
	if err := database.DB.First(&worker, workerID).Error; err != nil {
		c.JSON(http.StatusNotFound, types.Error("Worker not found"))
		return
	}

	if req.Name != nil {
		worker.Name = *req.Name
	}
	if req.Phone != nil {
		worker.Phone = *req.Phone
	}
	if req.ServiceTypes != nil {
		serviceTypes, fieldErrs := parseServiceTypes(req.ServiceTypes)
		if fieldErrs != nil {
			c.JSON(http.StatusBadRequest, types.ErrorWithFields("Validation error", fieldErrs))
			return
		}
		worker.ServiceTypes = datatypes.NewJSONSlice(serviceTypes)
	}
	if req.HourlyRate != nil {
		worker.HourlyRate = *req.HourlyRate
	}
	if req.Bio != nil {
		worker.Bio = req.Bio
	}
	if req.Experience != nil {
		worker.Experience = req.Experience
	}
	if req.Status != nil {
		status := models.WorkerStatus(*req.Status)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, types.ErrorWithFields("Validation error",
				map[string][]string{"status": {"Status must be one of ACTIVE, INACTIVE, VERIFIED, SUSPENDED"}}))
			return
		}
		worker.Status = status
	}

	if err := database.DB.Save(&worker).Error; err != nil {
		c.JSON(http.StatusInternalServerError, types.Error("Failed to update worker"))
		return
	}

	c.JSON(http.StatusOK, types.Success("Worker updated", worker))
}

// deleteWorker removes a worker profile
func deleteWorker(c *gin.Context) {
	workerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.Error("Invalid worker ID"))
		return
	}

	var worker models.Worker
	if err := database.DB.First(&worker, workerID).Error; err != nil {
		c.JSON(http.StatusNotFound, types.Error("Worker not found"))
		return
	}

	if err := database.DB.Delete(&worker).Error; err != nil {
		c.JSON(http.StatusInternalServerError, types.Error("Failed to delete worker"))
		return
	}

	c.JSON(http.StatusOK, types.Success("Worker deleted", nil))
}

// parseServiceTypes validates a list of raw service type strings
func parseServiceTypes(raw []string) ([]models.ServiceType, map[string][]string) {
	serviceTypes := make([]models.ServiceType, 0, len(raw))
	for _, value := range raw {
		st := models.ServiceType(value)
		if !st.IsValid() {
			return nil, map[string][]string{"service_types": {"Unknown service type: " + value}}
		}
		serviceTypes = append(serviceTypes, st)
	}
	return serviceTypes, nil
}
