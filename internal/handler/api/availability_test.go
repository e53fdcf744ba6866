//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"billboard-booking/internal/domain/schedule"
	"billboard-booking/internal/handler/api"
	resdto "billboard-booking/internal/handler/dto/response"
	"billboard-booking/internal/handler/middleware"
	"billboard-booking/internal/pkg/errs"
	"billboard-booking/internal/usecase/queries"
	"billboard-booking/tests/common/httptest"
	queriesmock "billboard-booking/tests/mock/queries"
	sharedmock "billboard-booking/tests/mock/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	store       *sharedmock.MockBookingStore
	sessions    *sharedmock.MockSessionRepository
	resourceID  uuid.UUID
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.store = sharedmock.NewMockBookingStore(s.mockCtrl)
	s.sessions = sharedmock.NewMockSessionRepository(s.mockCtrl)
	s.resourceID = uuid.New()

	availability := api.NewAvailabilityHandler(s.mockQueries)
	health := api.NewHealthHandler(s.store, s.sessions)

	s.router.GET("/health", health.Check)
	s.router.GET("/resources/:id/availability", availability.Get)
	s.router.GET("/resources/:id/bookings", availability.ListBookings)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

// ================================================================================
// TestGet
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestGet() {
	date := schedule.MustParseDate("2030-03-14")
	url := "/resources/" + s.resourceID.String() + "/availability?date=2030-03-14"

	s.Run("success: booked hours carry the booking id", func() {
		bookingID := uuid.New()
		grid := schedule.NewGrid(date, []schedule.Occupancy{{BookingID: bookingID, Interval: schedule.Interval{Start: 9, End: 11}}})
		s.mockQueries.EXPECT().Resolve(gomock.Any(), s.resourceID, date).Return(grid)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Degraded)
		s.Len(body.Slots, schedule.SlotsPerDay)
		s.Len(body.AvailableHours, schedule.SlotsPerDay-2)
		s.Equal(9, body.Slots[1].Hour)
		s.True(body.Slots[1].Booked)
		s.Require().NotNil(body.Slots[1].BookingID)
		s.Equal(bookingID, *body.Slots[1].BookingID)
	})

	s.Run("success: degraded grid is flagged", func() {
		s.mockQueries.EXPECT().Resolve(gomock.Any(), s.resourceID, date).Return(schedule.FreeGrid(date))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Degraded)
		s.Len(body.AvailableHours, schedule.SlotsPerDay)
	})

	s.Run("error: 400 Bad Request without a date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/"+s.resourceID.String()+"/availability", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestListBookings() {
	base := "/resources/" + s.resourceID.String() + "/bookings"

	s.Run("success", func() {
		views := []queries.BookingView{{ID: uuid.New(), ResourceID: s.resourceID, Date: "2030-03-14", StartHour: 9, EndHour: 12, Status: "confirmed", TotalAmount: 60}}
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), s.resourceID, gomock.Any(), gomock.Any()).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?from=2030-03-01&to=2030-03-31", nil)

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(views[0].ID, body[0].ID)
		s.Equal(int64(60), body[0].TotalAmount)
	})

	s.Run("error: 400 Bad Request for an inverted range", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), s.resourceID, gomock.Any(), gomock.Any()).
			Return(nil, errs.NewValidationError(map[string]string{"to": "must not be before from"}))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?from=2030-03-31&to=2030-03-01", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})

	s.Run("error: 503 Service Unavailable when the ledger is down", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), s.resourceID, gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("connection refused"), errs.ErrSystemUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?from=2030-03-01&to=2030-03-02", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}

// ================================================================================
// TestHealth
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestHealth() {
	s.Run("ok", func() {
		s.store.EXPECT().CheckAvailabilitySystem(gomock.Any()).Return(nil)
		s.sessions.EXPECT().Ping(gomock.Any()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ok", body["status"])
	})

	s.Run("degraded", func() {
		s.store.EXPECT().CheckAvailabilitySystem(gomock.Any()).Return(nil)
		s.sessions.EXPECT().Ping(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
			return context.DeadlineExceeded
		})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil)

		s.Equal(http.StatusServiceUnavailable, rec.Code)
	})
}
