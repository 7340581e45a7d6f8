package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"tasknest-server/database"
	"tasknest-server/middleware"
	"tasknest-server/models"
	"tasknest-server/types"
	"tasknest-server/utils"
)

// RegisterRequest represents the registration payload
type RegisterRequest struct {
	Name     string  `json:"name" binding:"required,min=2"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterAuthRoutes registers authentication routes
func RegisterAuthRoutes(router *gin.RouterGroup) {
	router.POST("/register", register)
	router.POST("/login", login)

	me := router.Group("")
	me.Use(middleware.AuthMiddleware())
	me.GET("/me", currentUser)
}

// register creates a customer account. Registration never produces any
// other role.
func register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.Error("Validation error: "+err.Error()))
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.Error("Failed to process password"))
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Phone:        req.Phone,
		Address:      req.Address,
		Role:         models.RoleCustomer,
		IsActive:     true,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, types.Error("User with this email already exists"))
			return
		}
		log.Error().Err(err).Msg("failed to create user")
		c.JSON(http.StatusInternalServerError, types.Error("An error occurred during registration"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.Error("Failed to generate token"))
		return
	}

	c.JSON(http.StatusCreated, types.Success("User registered successfully", gin.H{
		"user":  user,
		"token": token,
	}))
}

// login authenticates a user by email and password
func login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.Error("Validation error: "+err.Error()))
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, types.Error("Invalid credentials"))
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusForbidden, types.Error("Your account has been disabled. Please contact support."))
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, types.Error("Invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.Error("Failed to generate token"))
		return
	}

	c.JSON(http.StatusOK, types.Success("Login successful", gin.H{
		"user":  user,
		"token": token,
	}))
}

// currentUser returns the authenticated user's profile
func currentUser(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	c.JSON(http.StatusOK, types.Success("User retrieved successfully", user))
}
