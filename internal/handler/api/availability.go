package api

import (
	"errors"
	"net/http"

	resdto "bookmarket/internal/handler/dto/response"
	"bookmarket/internal/handler/httperr"
	"bookmarket/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityUseCase usecase.AvailabilityUseCase
}

func NewAvailabilityHandler(availabilityUseCase usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUseCase: availabilityUseCase,
	}
}

// @Summary Get available slots
// @Description List bookable start times for a service on a date, aggregated across eligible staff
// @Tags availability
// @Produce json
// @Param id path string true "Business ID"
// @Param serviceID path string true "Service ID"
// @Param date query string true "Target date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /businesses/{id}/services/{serviceID}/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid business ID format",
		})
		return
	}
	serviceID, err := uuid.Parse(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID format",
		})
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'date' is required",
		})
		return
	}

	slots, err := h.availabilityUseCase.ResolveAvailableSlots(c.Request.Context(), businessID, serviceID, date)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
		case errors.Is(err, usecase.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, usecase.ErrScheduleCorrupt):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Conflicting calendar rules for the requested date",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlots(date, slots))
}
