package api

import (
	"errors"
	"net/http"

	"bookmarket/internal/domain/booking"
	reqdto "bookmarket/internal/handler/dto/request"
	resdto "bookmarket/internal/handler/dto/response"
	"bookmarket/internal/handler/httperr"
	"bookmarket/internal/handler/middleware"
	"bookmarket/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
	authUseCase    usecase.AuthUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase, authUseCase usecase.AuthUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
		authUseCase:    authUseCase,
	}
}

// @Summary Create booking
// @Description Book an offered slot; the booking awaits owner confirmation
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := usecase.CreateBookingParams{
		BusinessID: req.BusinessID,
		ServiceID:  req.ServiceID,
		StaffID:    req.StaffID,
		CustomerID: userID,
		Date:       req.Date,
		StartTime:  req.StartTime,
	}

	bookingRM, err := h.bookingUseCase.CreateBooking(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate), errors.Is(err, usecase.ErrInvalidTime):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date or time format",
			})
		case errors.Is(err, usecase.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, usecase.ErrStaffNotEligible):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Staff member is not eligible for this service",
			})
		case errors.Is(err, usecase.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Requested slot is not available",
			})
		case errors.Is(err, usecase.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot was taken by another booking",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingRM(bookingRM))
}

// @Summary Get booking
// @Description Get one of the current customer's bookings by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	bookingRM, err := h.bookingUseCase.GetBooking(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(bookingRM))
}

// @Summary List bookings
// @Description List the current customer's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingsRM, err := h.bookingUseCase.ListCustomerBookings(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.BookingResponse, len(bookingsRM))
	for i, rm := range bookingsRM {
		response[i] = resdto.FromBookingRM(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Cancel booking
// @Description Cancel one of the current customer's still-active bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	bookingRM, err := h.bookingUseCase.CancelBooking(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking belongs to another customer",
			})
		case errors.Is(err, booking.ErrAlreadyFinalized):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is already finalized",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(bookingRM))
}

// @Summary Decide booking
// @Description Confirm or reject a pending booking of the owner's business
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.DecideBookingRequest true "Decision"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/decision [post]
func (h *BookingHandler) DecideBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.DecideBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	actor, err := h.authUseCase.GetCurrentUser(c.Request.Context(), userID)
	if err != nil || actor.BusinessID == nil {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "No business associated with this account",
		})
		return
	}

	bookingRM, err := h.bookingUseCase.DecideBooking(c.Request.Context(), usecase.DecideBookingParams{
		BookingID:  id,
		OwnerID:    userID,
		BusinessID: *actor.BusinessID,
		Confirm:    req.Confirmed(),
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking belongs to another business",
			})
		case errors.Is(err, booking.ErrNotAwaitingReview):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is not awaiting confirmation",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(bookingRM))
}
