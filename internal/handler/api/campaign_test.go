//go:build unit

package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"billboard-booking/internal/handler/api"
	resdto "billboard-booking/internal/handler/dto/response"
	"billboard-booking/internal/handler/httperr"
	"billboard-booking/internal/handler/middleware"
	"billboard-booking/internal/infra"
	"billboard-booking/internal/pkg/errs"
	"billboard-booking/internal/usecase/commands"
	"billboard-booking/internal/usecase/queries"
	"billboard-booking/tests/common/builder"
	"billboard-booking/tests/common/httptest"
	"billboard-booking/tests/common/testutil"
	commandsmock "billboard-booking/tests/mock/commands"
	queriesmock "billboard-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CampaignHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCampaignCommands
	mockQueries  *queriesmock.MockCampaignQueries
	handler      *api.CampaignHandler
	view         *queries.CampaignView
}

func (s *CampaignHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCampaignCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCampaignQueries(s.mockCtrl)
	s.handler = api.NewCampaignHandler(s.mockCommands, s.mockQueries)

	view, err := builder.NewCampaignBuilder().BuildView()
	s.Require().NoError(err)
	s.view = view

	s.router.POST("/campaigns", s.handler.Start)
	s.router.GET("/campaigns/:id", s.handler.Get)
	s.router.DELETE("/campaigns/:id", s.handler.Close)
	s.router.PUT("/campaigns/:id/type", s.handler.ChooseType)
	s.router.POST("/campaigns/:id/dates", s.handler.SelectDate)
	s.router.POST("/campaigns/:id/dates/:date/hours/:hour", s.handler.ToggleHour)
	s.router.POST("/campaigns/:id/template", s.handler.ApplyTemplate)
	s.router.POST("/campaigns/:id/details", s.handler.ProceedToDetails)
	s.router.POST("/campaigns/:id/calendar", s.handler.BackToCalendar)
	s.router.POST("/campaigns/:id/submit", s.handler.Submit)
	s.router.POST("/campaigns/:id/compensate", s.handler.Compensate)
}

func (s *CampaignHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCampaignHandlerSuite(t *testing.T) {
	suite.Run(t, new(CampaignHandlerTestSuite))
}

func (s *CampaignHandlerTestSuite) url(suffix string) string {
	return "/campaigns/" + s.view.ID.String() + suffix
}

type testCaseCampaign struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestStart
// ================================================================================

func (s *CampaignHandlerTestSuite) TestStart() {
	resourceID := uuid.New()

	s.Run("success: returns 201 Created with the session", func() {
		s.mockCommands.EXPECT().Start(gomock.Any(), resourceID).Return(s.view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/campaigns", map[string]any{"resourceId": resourceID})

		var body resdto.CampaignResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(s.view.ID, body.ID)
		s.Equal("details", body.Phase)
		s.Equal(int64(80), body.Summary.TotalAmount)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/campaigns/" + s.view.ID.String()})
	})

	s.Run("error: 400 Bad Request without resourceId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/campaigns", map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 503 Service Unavailable when the booking system is down", func() {
		s.mockCommands.EXPECT().Start(gomock.Any(), resourceID).
			Return(nil, errs.Mark(errs.New("ping failed"), errs.ErrSystemUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/campaigns", map[string]any{"resourceId": resourceID})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "unavailable")
	})

	s.Run("error: 404 Not Found for an unknown billboard", func() {
		s.mockCommands.EXPECT().Start(gomock.Any(), resourceID).
			Return(nil, errs.Mark(infra.WrapRepoErr("billboard not found", nil, infra.KindNotFound), errs.ErrResourceNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/campaigns", map[string]any{"resourceId": resourceID})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Resource not found")
	})
}

// ================================================================================
// TestGet / TestClose
// ================================================================================

func (s *CampaignHandlerTestSuite) TestGet() {
	s.Run("success: returns the session", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), s.view.ID).Return(s.view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url(""), nil)

		var body resdto.CampaignResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Selections, 1)
		s.Equal("2030-03-14", body.Selections[0].Date)
		s.Equal([]resdto.IntervalResponse{{Start: 9, End: 12}, {Start: 14, End: 15}}, body.Selections[0].Intervals)
		s.Len(body.Selections[0].Slots, 15)
		s.Equal(s.view.Resource.ID, body.Resource.ID)
	})

	s.Run("error: 400 Bad Request for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/campaigns/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for an expired session", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), s.view.ID).Return(nil, errs.Mark(errs.New("redis: nil"), errs.ErrSessionNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url(""), nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Campaign not found")
	})
}

func (s *CampaignHandlerTestSuite) TestClose() {
	s.mockCommands.EXPECT().Close(gomock.Any(), s.view.ID).Return(nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.url(""), nil)

	s.Equal(http.StatusNoContent, rec.Code)
}

// ================================================================================
// TestCalendar
// ================================================================================

func (s *CampaignHandlerTestSuite) TestChooseType() {
	cases := []testCaseCampaign{
		{name: "single-day", mutate: testutil.Field("type", "single-day"), expectCode: http.StatusOK},
		{name: "multi-day", mutate: testutil.Field("type", "multi-day"), expectCode: http.StatusOK},
		{name: "unknown type", mutate: testutil.Field("type", "weekly"), expectCode: http.StatusBadRequest},
		{name: "missing type", mutate: testutil.Field("type", nil), expectCode: http.StatusBadRequest},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			body := testutil.DtoMap(s.T(), map[string]any{"type": "single-day"}, tc.mutate)
			if tc.expectCode == http.StatusOK {
				s.mockCommands.EXPECT().ChooseType(gomock.Any(), s.view.ID, body["type"]).Return(s.view, nil)
			}

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url("/type"), body)

			if tc.expectCode == http.StatusOK {
				httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
			} else {
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			}
		})
	}

	s.Run("error: 409 Conflict after confirmation", func() {
		s.mockCommands.EXPECT().ChooseType(gomock.Any(), s.view.ID, "single-day").
			Return(nil, errs.Wrapf(errs.ErrInvalidTransition, "cannot choose campaign type in phase confirmation"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url("/type"), map[string]any{"type": "single-day"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not allowed")
	})
}

func (s *CampaignHandlerTestSuite) TestSelectDate() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().SelectDate(gomock.Any(), s.view.ID, gomock.Any()).Return(s.view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/dates"), map[string]any{"date": "2030-03-14"})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	for _, date := range []string{"14/03/2030", "2030-02-30", ""} {
		s.Run("error: 400 Bad Request for date "+date, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/dates"), map[string]any{"date": date})
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		})
	}

	s.Run("error: 400 Bad Request with detail for a past date", func() {
		s.mockCommands.EXPECT().SelectDate(gomock.Any(), s.view.ID, gomock.Any()).
			Return(nil, errs.NewValidationError(map[string]string{"date": "must not be in the past"}))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/dates"), map[string]any{"date": "2020-01-01"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
		s.Equal("must not be in the past", httptest.ErrorDetail(s.T(), rec)["date"])
	})
}

func (s *CampaignHandlerTestSuite) TestToggleHour() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().ToggleHour(gomock.Any(), s.view.ID, gomock.Any(), 15).Return(s.view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/dates/2030-03-14/hours/15"), nil)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for a non-numeric hour", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/dates/2030-03-14/hours/noon"), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid hour")
	})

	s.Run("error: 422 Unprocessable Entity while availability is loading", func() {
		s.mockCommands.EXPECT().ToggleHour(gomock.Any(), s.view.ID, gomock.Any(), 9).
			Return(nil, errs.Wrapf(errs.ErrAvailabilityPending, "date 2030-03-14"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/dates/2030-03-14/hours/9"), nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "loading")
	})

	s.Run("error: 400 Bad Request outside the operating window", func() {
		s.mockCommands.EXPECT().ToggleHour(gomock.Any(), s.view.ID, gomock.Any(), 3).
			Return(nil, errs.Wrapf(errs.ErrHourOutOfRange, "hour 3"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/dates/2030-03-14/hours/3"), nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "operating window")
	})
}

func (s *CampaignHandlerTestSuite) TestApplyTemplate() {
	s.Run("success: source date and targets are parsed", func() {
		s.mockCommands.EXPECT().ApplyTemplate(gomock.Any(), s.view.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in commands.TemplateInput) (*queries.CampaignView, error) {
				s.Require().NotNil(in.SourceDate)
				s.Equal("2030-03-14", in.SourceDate.String())
				s.Len(in.TargetDates, 2)
				return s.view, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/template"), map[string]any{
			"sourceDate":  "2030-03-14",
			"targetDates": []string{"2030-03-15", "2030-03-16"},
		})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for a malformed target", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/template"), map[string]any{
			"hours":       []int{9},
			"targetDates": []string{"tomorrow"},
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *CampaignHandlerTestSuite) TestPhaseNavigation() {
	s.Run("details: 400 Bad Request without hours", func() {
		s.mockCommands.EXPECT().ProceedToDetails(gomock.Any(), s.view.ID).
			Return(nil, errs.NewValidationError(map[string]string{"hours": "select at least one hour"}))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/details"), nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})

	s.Run("calendar: success", func() {
		s.mockCommands.EXPECT().BackToCalendar(gomock.Any(), s.view.ID).Return(s.view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/calendar"), nil)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *CampaignHandlerTestSuite) TestSubmit() {
	reqBody := builder.NewCampaignBuilder().BuildSubmitRequestDTO()

	s.Run("success: returns 201 Created with booking ids", func() {
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.view.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in commands.SubmitInput) (*commands.SubmitCampaignResult, error) {
				s.Equal("Jane Roe", in.Customer.Name)
				s.Equal("spring launch", in.Notes)
				return &commands.SubmitCampaignResult{Campaign: s.view, BookingIDs: ids}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/submit"), reqBody)

		var body resdto.SubmitCampaignResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(ids, body.BookingIDs)
	})

	s.Run("notes length", func() {
		cases := []testCaseCampaign{
			{name: "1000 chars", mutate: testutil.Field("notes", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
			{name: "1001 chars", mutate: testutil.Field("notes", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
			{name: "omitted", mutate: testutil.Field("notes", nil), expectCode: http.StatusCreated},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Submit(gomock.Any(), s.view.ID, gomock.Any()).
						Return(&commands.SubmitCampaignResult{Campaign: s.view}, nil)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/submit"), testutil.DtoMap(s.T(), reqBody, tc.mutate))
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("contact fields are passed through for domain validation", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.view.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in commands.SubmitInput) (*commands.SubmitCampaignResult, error) {
				s.Equal("(555) 123.4567", in.Customer.Phone)
				s.Equal("", in.Customer.Email)
				return &commands.SubmitCampaignResult{Campaign: s.view}, nil
			})

		body := testutil.DtoMap(s.T(), reqBody, testutil.Nested("customer",
			testutil.Field("phone", "(555) 123.4567"),
			testutil.Field("email", nil),
		))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/submit"), body)
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 400 Bad Request with every invalid field", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.view.ID, gomock.Any()).
			Return(&commands.SubmitCampaignResult{Campaign: s.view}, errs.NewValidationError(map[string]string{
				"email": "invalid email address",
				"phone": "phone number must have 10 digits",
			}))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/submit"), reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
		detail := httptest.ErrorDetail(s.T(), rec)
		s.Contains(detail, "email")
		s.Contains(detail, "phone")
	})

	s.Run("error: 409 Conflict reports bookings created before the failure", func() {
		created := uuid.New()
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.view.ID, gomock.Any()).
			Return(&commands.SubmitCampaignResult{Campaign: s.view, BookingIDs: []uuid.UUID{created}},
				errs.Mark(errs.New("overlap"), errs.ErrAvailabilityConflict))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/submit"), reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer available")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, httperr.CodeAvailabilityConflict)
		s.Equal([]any{created.String()}, httptest.ErrorDetail(s.T(), rec)["createdBookingIds"])
	})

	s.Run("error: 502 Bad Gateway on a persistence failure", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.view.ID, gomock.Any()).
			Return(&commands.SubmitCampaignResult{Campaign: s.view}, errs.Mark(errs.New("disk full"), errs.ErrPersistence))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/submit"), reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "could not be saved")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadGateway, httperr.CodePersistence)
	})
}

func (s *CampaignHandlerTestSuite) TestCompensate() {
	s.Run("success", func() {
		canceled := []uuid.UUID{uuid.New()}
		s.mockCommands.EXPECT().Compensate(gomock.Any(), s.view.ID).
			Return(&commands.CompensateResult{Campaign: s.view, Canceled: canceled}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/compensate"), nil)

		var body resdto.CompensateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(canceled, body.Canceled)
	})
}
