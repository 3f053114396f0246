package bookings

import (
	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures the booking routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/booking", controller.GetUserBookings)       // GET /api/v1/booking?userId=...
	rg.POST("/booking", controller.CreateBooking)        // POST /api/v1/booking
	rg.DELETE("/booking", controller.DeleteUserBooking)  // DELETE /api/v1/booking?userId=...
	rg.DELETE("/bookings/:id", controller.DeleteBooking) // DELETE /api/v1/bookings/:id?userId=...
}
