package analytics

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"tablebook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const day = 24 * time.Hour

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the owner analytics endpoints; the group must
// already carry auth + owner-role middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")
	{
		analytics.GET("/daily-sales", h.DailySales)
		analytics.GET("/funnel", h.Funnel)
		analytics.GET("/forecast", h.Forecast)
	}
}

// window resolves the from/to/span query triple. Defaults to the
// trailing span days ending now.
func window(c *gin.Context) (time.Time, time.Time, error) {
	spanDays := 30
	if s := c.Query("span"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if v > 0 {
			spanDays = v
		}
	}

	to := time.Now()
	if s := c.Query("to"); s != "" {
		v, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = v
	}

	from := to.Add(-time.Duration(spanDays) * day)
	if s := c.Query("from"); s != "" {
		v, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = v
	}

	return from, to, nil
}

func (h *Handler) DailySales(c *gin.Context) {
	from, to, err := window(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query")
		return
	}

	ownerID := c.GetString("user_id")
	rows, err := h.service.DailySales(c.Request.Context(), ownerID, from, to)
	if err != nil {
		h.fail(c, "daily sales", err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) Funnel(c *gin.Context) {
	from, to, err := window(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query")
		return
	}

	ownerID := c.GetString("user_id")
	report, err := h.service.Funnel(c.Request.Context(), ownerID, from, to)
	if err != nil {
		h.fail(c, "funnel", err)
		return
	}
	response.Success(c, http.StatusOK, report)
}

func (h *Handler) Forecast(c *gin.Context) {
	horizon := 7
	if s := c.Query("horizon"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query")
			return
		}
		if v > 0 {
			horizon = v
		}
	}

	ownerID := c.GetString("user_id")
	days, err := h.service.Forecast(c.Request.Context(), ownerID, horizon)
	if err != nil {
		h.fail(c, "forecast", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"horizon":  horizon,
		"forecast": days,
	})
}

func (h *Handler) fail(c *gin.Context, op string, err error) {
	if errors.Is(err, ErrRestaurantNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Restaurant not found for this owner")
		return
	}
	log.Printf("analytics %s: %v", op, err)
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal Server Error")
}
