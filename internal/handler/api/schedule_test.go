//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"bookmarket/internal/domain/user"
	"bookmarket/internal/handler/api"
	"bookmarket/internal/usecase"
	"bookmarket/internal/usecase/readmodel"
	cmnhttptest "bookmarket/tests/common/httptest"
	usecasemock "bookmarket/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockUC     *usecasemock.MockScheduleUseCase
	mockAuth   *usecasemock.MockAuthUseCase
	handler    *api.ScheduleHandler
	userID     uuid.UUID
	businessID uuid.UUID
}

func (s *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()
	s.businessID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockScheduleUseCase(s.mockCtrl)
	s.mockAuth = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewScheduleHandler(s.mockUC, s.mockAuth)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleStaff)
		c.Next()
	}

	s.router.POST("/businesses/:id/calendar-rules", authMiddleware, s.handler.AddCalendarRule)
	s.router.PUT("/staff/:id/availability", authMiddleware, s.handler.ReplaceStaffAvailability)
	s.router.POST("/staff/:id/exceptions", authMiddleware, s.handler.AddStaffException)
}

func (s *ScheduleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScheduleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}

func (s *ScheduleHandlerTestSuite) staffRM() *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:         s.userID,
		Email:      "staff@example.com",
		Role:       string(user.RoleStaff),
		BusinessID: &s.businessID,
		IsActive:   true,
	}
}

func (s *ScheduleHandlerTestSuite) availabilityBody() map[string]any {
	shifts := make([]map[string]any, 0, 7)
	for w := 0; w < 7; w++ {
		shifts = append(shifts, map[string]any{
			"weekday":    w,
			"is_closed":  false,
			"start_time": "09:00",
			"end_time":   "17:00",
		})
	}
	return map[string]any{"shifts": shifts}
}

func (s *ScheduleHandlerTestSuite) TestReplaceStaffAvailability() {
	s.Run("replaces the week for a staff member of the caller's business", func() {
		staffID := uuid.New()
		actor := s.staffRM()
		s.mockAuth.EXPECT().
			GetCurrentUser(gomock.Any(), s.userID).
			Return(actor, nil)
		s.mockUC.EXPECT().
			ReplaceStaffAvailability(gomock.Any(), actor, staffID, gomock.Len(7)).
			Return(nil)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPut, "/staff/"+staffID.String()+"/availability", s.availabilityBody(), "token")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("staff of another business maps to 403", func() {
		staffID := uuid.New()
		s.mockAuth.EXPECT().
			GetCurrentUser(gomock.Any(), s.userID).
			Return(s.staffRM(), nil)
		s.mockUC.EXPECT().
			ReplaceStaffAvailability(gomock.Any(), gomock.Any(), staffID, gomock.Any()).
			Return(usecase.ErrForbidden)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPut, "/staff/"+staffID.String()+"/availability", s.availabilityBody(), "token")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "not managed by this account")
	})

	s.Run("requires authentication", func() {
		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPut, "/staff/"+uuid.New().String()+"/availability", s.availabilityBody(), "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("malformed id is a bad request before auth lookup", func() {
		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPut, "/staff/not-a-uuid/availability", s.availabilityBody(), "token")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "staff ID")
	})
}

func (s *ScheduleHandlerTestSuite) TestAddStaffException() {
	exceptionBody := map[string]any{"date": "2026-04-15", "is_closed": true, "reason": "sick leave"}

	s.Run("stores the exception", func() {
		staffID := uuid.New()
		actor := s.staffRM()
		s.mockAuth.EXPECT().
			GetCurrentUser(gomock.Any(), s.userID).
			Return(actor, nil)
		s.mockUC.EXPECT().
			AddStaffException(gomock.Any(), actor, staffID, usecase.StaffExceptionInput{
				Date:     "2026-04-15",
				IsClosed: true,
				Reason:   "sick leave",
			}).
			Return(nil)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPost, "/staff/"+staffID.String()+"/exceptions", exceptionBody, "token")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("staff of another business maps to 403", func() {
		staffID := uuid.New()
		s.mockAuth.EXPECT().
			GetCurrentUser(gomock.Any(), s.userID).
			Return(s.staffRM(), nil)
		s.mockUC.EXPECT().
			AddStaffException(gomock.Any(), gomock.Any(), staffID, gomock.Any()).
			Return(usecase.ErrForbidden)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPost, "/staff/"+staffID.String()+"/exceptions", exceptionBody, "token")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "not managed by this account")
	})

	s.Run("unresolvable caller maps to 403", func() {
		s.mockAuth.EXPECT().
			GetCurrentUser(gomock.Any(), s.userID).
			Return(nil, usecase.ErrUserNotFound)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPost, "/staff/"+uuid.New().String()+"/exceptions", exceptionBody, "token")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "not authorized")
	})
}

func (s *ScheduleHandlerTestSuite) TestAddCalendarRule() {
	ruleBody := map[string]any{"kind": "DAY_OFF", "date": "2026-04-15"}

	s.Run("overlapping rule maps to 409", func() {
		s.mockAuth.EXPECT().
			GetCurrentUser(gomock.Any(), s.userID).
			Return(s.staffRM(), nil)
		s.mockUC.EXPECT().
			AddCalendarRule(gomock.Any(), s.businessID, gomock.Any()).
			Return(uuid.Nil, usecase.ErrRuleOverlap)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPost, "/businesses/"+s.businessID.String()+"/calendar-rules", ruleBody, "token")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "overlaps")
	})

	s.Run("unexpected failure maps to 500", func() {
		s.mockAuth.EXPECT().
			GetCurrentUser(gomock.Any(), s.userID).
			Return(s.staffRM(), nil)
		s.mockUC.EXPECT().
			AddCalendarRule(gomock.Any(), s.businessID, gomock.Any()).
			Return(uuid.Nil, usecase.ErrDataAccessFailed)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodPost, "/businesses/"+s.businessID.String()+"/calendar-rules", ruleBody, "token")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}
