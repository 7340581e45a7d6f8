package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"tasknest-server/models"
	"tasknest-server/services"
	"tasknest-server/types"
)

// RegisterAdminBookingRoutes registers admin booking management routes
func RegisterAdminBookingRoutes(router *gin.RouterGroup, svc *services.BookingService) {
	router.GET("/bookings", listAllBookings(svc))
	router.PUT("/bookings", updateBooking(svc))
}

// listAllBookings returns every booking, optionally filtered by status
func listAllBookings(svc *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.ListAllBookings(c.Query("status"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.Error("Failed to fetch bookings"))
			return
		}

		c.JSON(http.StatusOK, types.Success("Bookings retrieved", bookings))
	}
}

// updateBooking applies a status change and/or worker assignment
func updateBooking(svc *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.Error("Booking ID required"))
			return
		}

		booking, err := svc.UpdateBooking(req)
		if err != nil {
			respondBookingError(c, err)
			return
		}

		log.Info().Uint("booking_id", booking.ID).Str("status", string(booking.Status)).
			Msg("booking updated")

		c.JSON(http.StatusOK, types.Success("Booking updated", booking))
	}
}
