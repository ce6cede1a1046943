//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"bookmarket/internal/domain/user"
	"bookmarket/internal/handler/api"
	resdto "bookmarket/internal/handler/dto/response"
	"bookmarket/internal/usecase"
	"bookmarket/internal/usecase/readmodel"
	cmnhttptest "bookmarket/tests/common/httptest"
	usecasemock "bookmarket/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockUC     *usecasemock.MockBookingUseCase
	mockAuth   *usecasemock.MockAuthUseCase
	handler    *api.BookingHandler
	customerID uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.customerID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.mockAuth = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockUC, s.mockAuth)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.customerID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.CancelBooking)
	s.router.POST("/bookings/:id/decision", authMiddleware, s.handler.DecideBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) sampleRM() *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:          uuid.New(),
		BusinessID:  uuid.New(),
		ServiceID:   uuid.New(),
		ServiceName: "Haircut",
		StaffID:     uuid.New(),
		StaffName:   "Dana",
		CustomerID:  s.customerID,
		Date:        "2026-04-15",
		StartTime:   "10:00",
		EndTime:     "10:30",
		Status:      "awaiting_confirmation",
	}
}

func (s *BookingHandlerTestSuite) createBody() map[string]any {
	return map[string]any{
		"business_id": uuid.New().String(),
		"service_id":  uuid.New().String(),
		"staff_id":    uuid.New().String(),
		"date":        "2026-04-15",
		"start_time":  "10:00",
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	s.Run("creates and returns 201", func() {
		rm := s.sampleRM()
		s.mockUC.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(rm, nil)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.createBody(), "token")

		var resp resdto.BookingResponse
		cmnhttptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(rm.ID, resp.ID)
		s.Equal("awaiting_confirmation", resp.Status)
	})

	s.Run("requires authentication", func() {
		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.createBody(), "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects a body missing required fields", func() {
		body := s.createBody()
		delete(body, "start_time")

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, "token")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("unavailable slot maps to 409", func() {
		s.mockUC.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrSlotUnavailable)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.createBody(), "token")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "not available")
	})

	s.Run("ineligible staff maps to 422", func() {
		s.mockUC.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrStaffNotEligible)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.createBody(), "token")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "not eligible")
	})

	s.Run("storage conflict maps to 409", func() {
		s.mockUC.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrBookingConflict)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.createBody(), "token")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "taken")
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("returns the customer's booking", func() {
		rm := s.sampleRM()
		s.mockUC.EXPECT().
			GetBooking(gomock.Any(), s.customerID, rm.ID).
			Return(rm, nil)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+rm.ID.String(), nil, "token")

		var resp resdto.BookingResponse
		cmnhttptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(rm.ID, resp.ID)
	})

	s.Run("malformed id is a bad request", func() {
		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "token")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "booking ID")
	})

	s.Run("missing booking maps to 404", func() {
		id := uuid.New()
		s.mockUC.EXPECT().
			GetBooking(gomock.Any(), s.customerID, id).
			Return(nil, usecase.ErrBookingNotFound)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "token")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	s.Run("cancels and returns the updated booking", func() {
		rm := s.sampleRM()
		rm.Status = "cancelled"
		s.mockUC.EXPECT().
			CancelBooking(gomock.Any(), s.customerID, rm.ID).
			Return(rm, nil)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+rm.ID.String()+"/cancel", nil, "token")

		var resp resdto.BookingResponse
		cmnhttptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("cancelled", resp.Status)
	})

	s.Run("foreign booking maps to 403", func() {
		id := uuid.New()
		s.mockUC.EXPECT().
			CancelBooking(gomock.Any(), s.customerID, id).
			Return(nil, usecase.ErrNotBookingOwner)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, "token")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "another customer")
	})
}

func (s *BookingHandlerTestSuite) TestDecideBooking() {
	businessID := uuid.New()

	ownerRM := func() *readmodel.AuthorizedUserRM {
		return &readmodel.AuthorizedUserRM{
			ID:         s.customerID,
			Email:      "owner@example.com",
			Role:       string(user.RoleOwner),
			BusinessID: &businessID,
			IsActive:   true,
		}
	}

	s.Run("confirms a pending booking", func() {
		rm := s.sampleRM()
		rm.Status = "confirmed"
		s.mockAuth.EXPECT().
			GetCurrentUser(gomock.Any(), s.customerID).
			Return(ownerRM(), nil)
		s.mockUC.EXPECT().
			DecideBooking(gomock.Any(), usecase.DecideBookingParams{
				BookingID:  rm.ID,
				OwnerID:    s.customerID,
				BusinessID: businessID,
				Confirm:    true,
			}).
			Return(rm, nil)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+rm.ID.String()+"/decision",
			map[string]any{"decision": "confirm"}, "token")

		var resp resdto.BookingResponse
		cmnhttptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("confirmed", resp.Status)
	})

	s.Run("rejects an unknown decision value", func() {
		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+uuid.New().String()+"/decision",
			map[string]any{"decision": "maybe"}, "token")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("account without a business maps to 403", func() {
		rm := ownerRM()
		rm.BusinessID = nil
		s.mockAuth.EXPECT().
			GetCurrentUser(gomock.Any(), s.customerID).
			Return(rm, nil)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+uuid.New().String()+"/decision",
			map[string]any{"decision": "reject"}, "token")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "No business")
	})

	s.Run("foreign business maps to 403", func() {
		id := uuid.New()
		s.mockAuth.EXPECT().
			GetCurrentUser(gomock.Any(), s.customerID).
			Return(ownerRM(), nil)
		s.mockUC.EXPECT().
			DecideBooking(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrForbidden)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/decision",
			map[string]any{"decision": "confirm"}, "token")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "another business")
	})
}
