package bookings

import (
	"errors"
	"net/http"

	"cineshow/internal/shared/utils/response"
	"cineshow/internal/shows"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

// CreateBooking handles POST /api/v1/booking
func (ctrl *Controller) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, err.Error())
		return
	}

	if err := ctrl.validator.Struct(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	booking, err := ctrl.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, shows.ErrShowNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Show not found", nil, err.Error())
		case errors.Is(err, ErrSeatConflict):
			response.RespondJSON(c, "error", http.StatusConflict, "One or more seats are already occupied", nil, err.Error())
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create booking", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Booking created successfully", booking, nil)
}

// GetUserBookings handles GET /api/v1/booking?userId=...
func (ctrl *Controller) GetUserBookings(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		response.RespondJSON(c, "error", http.StatusBadRequest, "userId query parameter is required", nil, nil)
		return
	}

	records, err := ctrl.service.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to get bookings", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Bookings retrieved successfully", records, nil)
}

// DeleteBooking handles DELETE /api/v1/bookings/:id?userId=...
func (ctrl *Controller) DeleteBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	userID := c.Query("userId")
	if userID == "" {
		response.RespondJSON(c, "error", http.StatusBadRequest, "userId query parameter is required", nil, nil)
		return
	}

	if err := ctrl.service.DeleteBooking(c.Request.Context(), bookingID, userID); err != nil {
		ctrl.respondDeleteError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking deleted successfully", nil, nil)
}

// DeleteUserBooking handles DELETE /api/v1/booking?userId=... (legacy route,
// only usable while the user holds a single booking)
func (ctrl *Controller) DeleteUserBooking(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		response.RespondJSON(c, "error", http.StatusBadRequest, "userId query parameter is required", nil, nil)
		return
	}

	if err := ctrl.service.DeleteUserBooking(c.Request.Context(), userID); err != nil {
		ctrl.respondDeleteError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking deleted successfully", nil, nil)
}

func (ctrl *Controller) respondDeleteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		response.RespondJSON(c, "error", http.StatusNotFound, "Booking not found", nil, err.Error())
	case errors.Is(err, ErrNotBookingOwner):
		response.RespondJSON(c, "error", http.StatusForbidden, "Booking belongs to a different user", nil, err.Error())
	case errors.Is(err, ErrAmbiguousDelete):
		response.RespondJSON(c, "error", http.StatusConflict, "Multiple bookings found, delete by booking ID instead", nil, err.Error())
	default:
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to delete booking", nil, err.Error())
	}
}
