package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"tasknest-server/metrics"
	"tasknest-server/models"
	"tasknest-server/services"
	"tasknest-server/types"
)

// RegisterBookingRoutes registers the customer-facing booking routes
func RegisterBookingRoutes(router *gin.RouterGroup, svc *services.BookingService) {
	router.POST("", createBooking(svc))
	router.GET("", listOwnBookings(svc))
	router.GET("/:id", getOwnBooking(svc))
}

// createBooking creates a booking plus its payment record for the
// authenticated user
func createBooking(svc *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.Error("Validation error: "+err.Error()))
			return
		}

		userID := c.GetUint("user_id")

		booking, err := svc.CreateBooking(userID, req)
		if err != nil {
			respondBookingError(c, err)
			return
		}

		metrics.IncBookingCreated()
		log.Info().Uint("booking_id", booking.ID).Uint("user_id", userID).
			Float64("final_price", booking.FinalPrice).Msg("booking created")

		c.JSON(http.StatusCreated, types.Success("Booking created successfully", booking))
	}
}

// listOwnBookings returns the authenticated user's bookings
func listOwnBookings(svc *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.ListBookingsForUser(c.GetUint("user_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.Error("Failed to fetch bookings"))
			return
		}

		c.JSON(http.StatusOK, types.Success("Bookings retrieved", bookings))
	}
}

// getOwnBooking returns one of the authenticated user's bookings by id
func getOwnBooking(svc *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.Error("Invalid booking ID"))
			return
		}

		booking, err := svc.GetBookingForUser(uint(bookingID), c.GetUint("user_id"))
		if err != nil {
			respondBookingError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.Success("Booking retrieved", booking))
	}
}

// respondBookingError maps service-layer errors onto the response envelope
func respondBookingError(c *gin.Context, err error) {
	var notFound *services.NotFoundError
	var validation *services.ValidationError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, types.Error(notFound.Error()))
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, types.ErrorWithFields("Validation error", validation.Fields))
	default:
		log.Error().Err(err).Msg("booking operation failed")
		c.JSON(http.StatusInternalServerError, types.Error("An error occurred"))
	}
}
