//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"bookmarket/internal/domain/schedule"
	"bookmarket/internal/handler/api"
	resdto "bookmarket/internal/handler/dto/response"
	"bookmarket/internal/usecase"
	cmnhttptest "bookmarket/tests/common/httptest"
	usecasemock "bookmarket/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockAvailabilityUseCase
	handler  *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockAvailabilityUseCase(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockUC)

	s.router.GET("/businesses/:id/services/:serviceID/availability", s.handler.GetAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) url(businessID, serviceID uuid.UUID, date string) string {
	return fmt.Sprintf("/businesses/%s/services/%s/availability?date=%s", businessID, serviceID, date)
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailability() {
	businessID := uuid.New()
	serviceID := uuid.New()

	s.Run("returns aggregated slots", func() {
		slots := []schedule.Slot{
			{Time: "09:00", Status: schedule.SlotAvailable, StaffCount: 2},
			{Time: "09:30", Status: schedule.SlotAvailable, StaffCount: 1},
		}
		s.mockUC.EXPECT().
			ResolveAvailableSlots(gomock.Any(), businessID, serviceID, "2026-04-15").
			Return(slots, nil)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url(businessID, serviceID, "2026-04-15"), nil, "")

		var resp resdto.AvailabilityResponse
		cmnhttptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("2026-04-15", resp.Date)
		s.Len(resp.Slots, 2)
		s.Equal("09:00", resp.Slots[0].Time)
		s.Equal(2, resp.Slots[0].StaffCount)
	})

	s.Run("empty result serializes as an empty array", func() {
		s.mockUC.EXPECT().
			ResolveAvailableSlots(gomock.Any(), businessID, serviceID, "2026-04-15").
			Return([]schedule.Slot{}, nil)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url(businessID, serviceID, "2026-04-15"), nil, "")

		var resp resdto.AvailabilityResponse
		cmnhttptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.NotNil(resp.Slots)
		s.Empty(resp.Slots)
	})

	s.Run("missing date query is a bad request", func() {
		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodGet,
			fmt.Sprintf("/businesses/%s/services/%s/availability", businessID, serviceID), nil, "")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "date")
	})

	s.Run("malformed business id is a bad request", func() {
		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodGet,
			fmt.Sprintf("/businesses/not-a-uuid/services/%s/availability?date=2026-04-15", serviceID), nil, "")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "business ID")
	})

	s.Run("invalid date maps to 400", func() {
		s.mockUC.EXPECT().
			ResolveAvailableSlots(gomock.Any(), businessID, serviceID, "15-04-2026").
			Return(nil, usecase.ErrInvalidDate)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url(businessID, serviceID, "15-04-2026"), nil, "")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "date")
	})

	s.Run("unknown service maps to 404", func() {
		s.mockUC.EXPECT().
			ResolveAvailableSlots(gomock.Any(), businessID, serviceID, "2026-04-15").
			Return(nil, usecase.ErrServiceNotFound)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url(businessID, serviceID, "2026-04-15"), nil, "")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Service not found")
	})

	s.Run("conflicting rules map to 409", func() {
		s.mockUC.EXPECT().
			ResolveAvailableSlots(gomock.Any(), businessID, serviceID, "2026-04-15").
			Return(nil, usecase.ErrScheduleCorrupt)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url(businessID, serviceID, "2026-04-15"), nil, "")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Conflicting calendar rules")
	})

	s.Run("data access failure maps to 500", func() {
		s.mockUC.EXPECT().
			ResolveAvailableSlots(gomock.Any(), businessID, serviceID, "2026-04-15").
			Return(nil, usecase.ErrDataAccessFailed)

		w := cmnhttptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url(businessID, serviceID, "2026-04-15"), nil, "")
		cmnhttptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}
