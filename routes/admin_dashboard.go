package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasknest-server/database"
	"tasknest-server/models"
	"tasknest-server/types"
)

// RegisterAdminDashboardRoutes registers the dashboard aggregation route
func RegisterAdminDashboardRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", getDashboard)
}

type dashboardStats struct {
	TotalCustomers int64            `json:"total_customers"`
	TotalBookings  int64            `json:"total_bookings"`
	ActiveWorkers  int64            `json:"active_workers"`
	TotalRevenue   float64          `json:"total_revenue"`
	RecentBookings []models.Booking `json:"recent_bookings"`
}

// getDashboard aggregates counts, revenue and recent bookings in one call
func getDashboard(c *gin.Context) {
	var stats dashboardStats

	if err := database.DB.Model(&models.User{}).
		Where("role = ?", models.RoleCustomer).
		Count(&stats.TotalCustomers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, types.Error("Failed to load dashboard"))
		return
	}

	database.DB.Model(&models.Booking{}).Count(&stats.TotalBookings)

	database.DB.Model(&models.Worker{}).
		Where("status = ?", models.WorkerActive).
		Count(&stats.ActiveWorkers)

	// Revenue counts only captured payments
	database.DB.Model(&models.Payment{}).
		Where("status = ?", models.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalRevenue)

	if err := database.DB.
		Preload("User").Preload("Service").Preload("Worker").Preload("Payment").
		Order("created_at DESC").
		Limit(10).
		Find(&stats.RecentBookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, types.Error("Failed to load dashboard"))
		return
	}

	c.JSON(http.StatusOK, types.Success("Dashboard stats retrieved", stats))
}
