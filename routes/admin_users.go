package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tasknest-server/database"
	"tasknest-server/models"
	"tasknest-server/types"
	"tasknest-server/utils"
)

// RegisterAdminUserRoutes registers admin user management routes
func RegisterAdminUserRoutes(router *gin.RouterGroup) {
	router.GET("/users", listUsers)
	router.POST("/users", createUser)
	router.PUT("/users/:id", updateUser)
	router.DELETE("/users/:id", deleteUser)
}

// userWithCount pairs a customer with its booking count for the admin list
type userWithCount struct {
	models.User
	BookingCount int64 `json:"booking_count"`
}

// listUsers returns all customer accounts with booking counts
func listUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Where("role = ?", models.RoleCustomer).
		Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, types.Error("Failed to fetch users"))
		return
	}

	type countRow struct {
		UserID uint
		Count  int64
	}
	var rows []countRow
	database.DB.Model(&models.Booking{}).
		Select("user_id, count(*) as count").
		Group("user_id").
		Scan(&rows)
	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.UserID] = row.Count
	}

	result := make([]userWithCount, 0, len(users))
	for _, u := range users {
		result = append(result, userWithCount{User: u, BookingCount: counts[u.ID]})
	}

	c.JSON(http.StatusOK, types.Success("Users retrieved", result))
}

// AdminCreateUserRequest represents the admin payload for creating a user
type AdminCreateUserRequest struct {
	Name     string  `json:"name" binding:"required,min=2"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	Role     string  `json:"role"`
}

// createUser creates an account with an explicit role
func createUser(c *gin.Context) {
	var req AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.Error("Validation error: "+err.Error()))
		return
	}

	role := models.UserRole(req.Role)
	if req.Role == "" {
		role = models.RoleCustomer
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		City:     req.City,
		Role:     role,
		IsActive: true,
	}
	if !user.IsValidRole() {
		c.JSON(http.StatusBadRequest, types.ErrorWithFields("Validation error",
			map[string][]string{"role": {"Role must be one of CUSTOMER, ADMIN, WORKER"}}))
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.Error("Failed to process password"))
		return
	}
	user.PasswordHash = hashedPassword

	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, types.Error("User with this email already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, types.Error("Failed to create user"))
		return
	}

	c.JSON(http.StatusCreated, types.Success("User created successfully", user))
}

// UpdateUserRequest toggles a user's active flag
type UpdateUserRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// updateUser enables or disables an account. Disabled accounts cannot
// authenticate.
func updateUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.Error("Invalid user ID"))
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.Error("User ID and is_active boolean required"))
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, types.Error("User not found"))
		return
	}

	if err := database.DB.Model(&user).Update("is_active", *req.IsActive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, types.Error("Failed to update user"))
		return
	}

	message := "User deactivated"
	if *req.IsActive {
		message = "User activated"
	}
	c.JSON(http.StatusOK, types.Success(message, user))
}

// deleteUser removes an account
func deleteUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.Error("Invalid user ID"))
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, types.Error("User not found"))
		return
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, types.Error("Failed to delete user"))
		return
	}

	c.JSON(http.StatusOK, types.Success("User deleted", nil))
}
