package booking

import (
	"errors"
	"log"
	"net/http"

	"tablebook/internal/domain"
	"tablebook/internal/pkg/response"
	"tablebook/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterCustomerRoutes attaches the customer-facing endpoints; the group
// must already carry auth + customer-role middleware.
func (h *Handler) RegisterCustomerRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("/create-booking", h.CreateBooking)
		bookings.POST("/get-bookings-by-customer", h.GetBookingsByCustomer)
	}
}

// RegisterOwnerRoutes attaches the owner-facing endpoints; the group must
// already carry auth + owner-role middleware.
func (h *Handler) RegisterOwnerRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("/get-bookings-by-restaurant", h.GetBookingsByRestaurant)
		bookings.POST("/change-booking-status", h.ChangeBookingStatus)
	}
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid Usage", details)
		return
	}

	customerID := c.GetString("user_id")

	b, err := h.service.Create(c.Request.Context(), customerID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid Usage")
		case errors.Is(err, ErrCustomerNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User Not Found")
		case errors.Is(err, ErrRestaurantNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Restaurant Not Found")
		default:
			log.Printf("create booking: %v", err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"booking": gin.H{
			"id":     b.ID,
			"status": b.Status,
		},
	})
}

func (h *Handler) GetBookingsByRestaurant(c *gin.Context) {
	ownerID := c.GetString("user_id")

	rows, err := h.service.ListByRestaurant(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, ErrRestaurantNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Restaurant not found for this owner")
			return
		}
		log.Printf("list bookings by restaurant: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookings": rows,
	})
}

func (h *Handler) GetBookingsByCustomer(c *gin.Context) {
	customerID := c.GetString("user_id")

	rows, err := h.service.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		log.Printf("list bookings by customer: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookings": rows,
	})
}

func (h *Handler) ChangeBookingStatus(c *gin.Context) {
	var req ChangeBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid Usage", details)
		return
	}

	ownerID := c.GetString("user_id")

	result, err := h.service.ChangeStatus(c.Request.Context(), ownerID, req.BookingID, domain.BookingStatus(req.NewStatus))
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid Usage")
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this booking's restaurant")
		case errors.Is(err, ErrInvalidStatusTransition):
			response.Error(c, http.StatusBadRequest, "INVALID_STATE", "Booking is no longer pending")
		default:
			log.Printf("change booking status: %v", err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to change booking status")
		}
		return
	}

	data := gin.H{
		"booking": gin.H{
			"id":     result.Booking.ID,
			"status": result.Booking.Status,
		},
	}
	if result.EmailWarning != "" {
		response.SuccessWithWarning(c, http.StatusOK, data, result.EmailWarning)
		return
	}
	response.Success(c, http.StatusOK, data)
}
