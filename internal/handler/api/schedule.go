package api

import (
	"errors"
	"net/http"

	reqdto "bookmarket/internal/handler/dto/request"
	"bookmarket/internal/handler/httperr"
	"bookmarket/internal/handler/middleware"
	"bookmarket/internal/usecase"
	"bookmarket/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	scheduleUseCase usecase.ScheduleUseCase
	authUseCase     usecase.AuthUseCase
}

func NewScheduleHandler(scheduleUseCase usecase.ScheduleUseCase, authUseCase usecase.AuthUseCase) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUseCase: scheduleUseCase,
		authUseCase:     authUseCase,
	}
}

// @Summary Get effective hours
// @Description Resolve the business's effective opening hours for a date
// @Tags schedule
// @Produce json
// @Param id path string true "Business ID"
// @Param date query string true "Target date (YYYY-MM-DD)"
// @Success 200 {object} usecase.EffectiveHours
// @Failure 400 {object} map[string]string
// @Router /businesses/{id}/hours [get]
func (h *ScheduleHandler) GetEffectiveHours(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid business ID format",
		})
		return
	}

	hours, err := h.scheduleUseCase.GetEffectiveHours(c.Request.Context(), businessID, c.Query("date"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
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

	c.JSON(http.StatusOK, hours)
}

// @Summary Replace working hours
// @Description Replace the weekly working hour template of the owner's business
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param request body reqdto.ReplaceWorkingHoursRequest true "All seven weekday rows"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /businesses/{id}/working-hours [put]
func (h *ScheduleHandler) ReplaceWorkingHours(c *gin.Context) {
	businessID, ok := h.ownedBusinessID(c)
	if !ok {
		return
	}

	var req reqdto.ReplaceWorkingHoursRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.scheduleUseCase.ReplaceWorkingHours(c.Request.Context(), businessID, req.ToInputs()); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTemplate):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Template must contain exactly one valid row per weekday",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Add calendar rule
// @Description Add a date override (day off, custom day, or range) to the owner's business
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param request body reqdto.CalendarRuleRequest true "Calendar rule"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /businesses/{id}/calendar-rules [post]
func (h *ScheduleHandler) AddCalendarRule(c *gin.Context) {
	businessID, ok := h.ownedBusinessID(c)
	if !ok {
		return
	}

	var req reqdto.CalendarRuleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	ruleID, err := h.scheduleUseCase.AddCalendarRule(c.Request.Context(), businessID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRule), errors.Is(err, usecase.ErrInvalidDate):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid calendar rule",
			})
		case errors.Is(err, usecase.ErrRuleOverlap):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Rule overlaps an existing calendar rule",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": ruleID.String()})
}

// @Summary List calendar rules
// @Description List the calendar rules of the owner's business
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Success 200 {array} readmodel.CalendarRuleRM
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /businesses/{id}/calendar-rules [get]
func (h *ScheduleHandler) ListCalendarRules(c *gin.Context) {
	businessID, ok := h.ownedBusinessID(c)
	if !ok {
		return
	}

	rules, err := h.scheduleUseCase.ListCalendarRules(c.Request.Context(), businessID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, rules)
}

// @Summary Delete calendar rule
// @Description Remove a calendar rule from the owner's business
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param ruleID path string true "Rule ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /businesses/{id}/calendar-rules/{ruleID} [delete]
func (h *ScheduleHandler) DeleteCalendarRule(c *gin.Context) {
	businessID, ok := h.ownedBusinessID(c)
	if !ok {
		return
	}

	ruleID, err := uuid.Parse(c.Param("ruleID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rule ID format",
		})
		return
	}

	if err := h.scheduleUseCase.DeleteCalendarRule(c.Request.Context(), businessID, ruleID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrRuleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Calendar rule not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Replace staff availability
// @Description Replace a staff member's recurring weekly availability
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Staff ID"
// @Param request body reqdto.ReplaceStaffAvailabilityRequest true "All seven weekday rows"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /staff/{id}/availability [put]
func (h *ScheduleHandler) ReplaceStaffAvailability(c *gin.Context) {
	staffID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid staff ID format",
		})
		return
	}

	actor, ok := h.currentActor(c)
	if !ok {
		return
	}

	var req reqdto.ReplaceStaffAvailabilityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.scheduleUseCase.ReplaceStaffAvailability(c.Request.Context(), actor, staffID, req.ToInputs()); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTemplate):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Availability must contain exactly one valid row per weekday",
			})
		case errors.Is(err, usecase.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Staff member is not managed by this account",
			})
		case errors.Is(err, usecase.ErrStaffNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Staff member not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Add staff exception
// @Description Add or replace a single-date exception for a staff member
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Staff ID"
// @Param request body reqdto.StaffExceptionRequest true "Exception"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /staff/{id}/exceptions [post]
func (h *ScheduleHandler) AddStaffException(c *gin.Context) {
	staffID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid staff ID format",
		})
		return
	}

	actor, ok := h.currentActor(c)
	if !ok {
		return
	}

	var req reqdto.StaffExceptionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.scheduleUseCase.AddStaffException(c.Request.Context(), actor, staffID, req.ToInput()); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
		case errors.Is(err, usecase.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Staff member is not managed by this account",
			})
		case errors.Is(err, usecase.ErrStaffNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Staff member not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// currentActor loads the authenticated caller's profile. Writes the
// response itself on failure.
func (h *ScheduleHandler) currentActor(c *gin.Context) (*readmodel.AuthorizedUserRM, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return nil, false
	}

	actor, err := h.authUseCase.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Account is not authorized for this operation",
		})
		return nil, false
	}

	return actor, true
}

// ownedBusinessID resolves the :id path parameter and verifies it is the
// authenticated owner's business. Writes the response itself on failure.
func (h *ScheduleHandler) ownedBusinessID(c *gin.Context) (uuid.UUID, bool) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid business ID format",
		})
		return uuid.Nil, false
	}

	actor, ok := h.currentActor(c)
	if !ok {
		return uuid.Nil, false
	}
	if actor.BusinessID == nil || *actor.BusinessID != businessID {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Business is not administered by this account",
		})
		return uuid.Nil, false
	}

	return businessID, true
}
