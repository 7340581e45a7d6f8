package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"tasknest-server/config"
	"tasknest-server/database"
	"tasknest-server/logging"
	"tasknest-server/metrics"
	"tasknest-server/middleware"
	"tasknest-server/routes"
	"tasknest-server/services"
	ws "tasknest-server/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()
	cfg := config.AppConfig

	logging.Setup(cfg.Logging)
	metrics.Register()

	// Initialize database
	if err := database.Initialize(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	if err := seedDatabase(database.DB); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}

	// Set Gin mode
	if cfg.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// Security headers (must be first)
	router.Use(middleware.SecurityHeadersMiddleware())

	// Rate limiting
	router.Use(middleware.RateLimitMiddleware())
	middleware.StartRateLimiterCleanup()

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Request logging and recovery
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "TaskNest server is running",
			"time":    time.Now().UTC(),
		})
	})

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Live booking feed for the admin dashboard
	hub := ws.NewHub()
	go hub.Run()

	bookingService := services.NewBookingService(database.DB, cfg.Booking.StrictTransitions, hub)

	// API routes
	api := router.Group("/api/v1")
	{
		// Auth routes (no authentication required) - with strict rate limiting
		authRoutes := api.Group("/auth")
		authRoutes.Use(middleware.AuthRateLimitMiddleware())
		routes.RegisterAuthRoutes(authRoutes)

		// Service catalog (public)
		serviceRoutes := api.Group("/services")
		routes.RegisterServiceRoutes(serviceRoutes)

		// WebSocket handshake carries the token as a query parameter
		routes.RegisterWebSocketRoutes(api, hub)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			bookingRoutes := protected.Group("/bookings")
			routes.RegisterBookingRoutes(bookingRoutes, bookingService)
		}

		// Admin routes (protected with admin authentication)
		adminRoutes := api.Group("/admin")
		adminRoutes.Use(middleware.AdminAuthMiddleware())
		{
			routes.RegisterAdminBookingRoutes(adminRoutes, bookingService)
			routes.RegisterAdminWorkerRoutes(adminRoutes)
			routes.RegisterAdminServiceRoutes(adminRoutes)
			routes.RegisterAdminUserRoutes(adminRoutes)
			routes.RegisterAdminDashboardRoutes(adminRoutes)
		}
	}

	log.Info().Str("port", cfg.Server.Port).Msg("Server starting")
	if err := router.Run("0.0.0.0:" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
