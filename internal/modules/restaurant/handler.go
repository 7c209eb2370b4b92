package restaurant

import (
	"errors"
	"net/http"

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

// RegisterRoutes attaches the owner-facing directory endpoints. The group
// is expected to carry auth + owner-role middleware already.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	restaurants := rg.Group("/restaurants")
	{
		restaurants.POST("/add-restaurant", h.AddRestaurant)
		restaurants.POST("/get-restaurant-by-owner", h.GetRestaurantByOwner)
	}
}

func (h *Handler) AddRestaurant(c *gin.Context) {
	var req AddRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	ownerID := c.GetString("user_id")

	r, err := h.service.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			response.Error(c, http.StatusBadRequest, "RESTAURANT_EXISTS", "Restaurant already exists for this user")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add restaurant")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"restaurantID": r.ID,
	})
}

func (h *Handler) GetRestaurantByOwner(c *gin.Context) {
	ownerID := c.GetString("user_id")

	r, err := h.service.GetByOwner(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Restaurant not found for this owner")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch restaurant")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"restaurant": r,
	})
}
