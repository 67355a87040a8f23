//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"book-catalog/internal/handler/api"
	reqdto "book-catalog/internal/handler/dto/request"
	resdto "book-catalog/internal/handler/dto/response"
	"book-catalog/internal/pkg/dateonly"
	"book-catalog/internal/usecase/commands"
	"book-catalog/internal/usecase/queries"
	"book-catalog/tests/common/httptest"
	commandsmock "book-catalog/tests/mock/commands"
	queriesmock "book-catalog/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	userID       uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	s.router.GET("/reserv", s.handler.List)
	s.router.POST("/reserv", func(c *gin.Context) {
		// Mock middleware behavior for the authenticated user
		c.Set("user_id", s.userID)
		s.handler.Create(c)
	})
	s.router.PUT("/reserv/:id", s.handler.Return)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) sampleView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:        uuid.New(),
		BeginDate: dateonly.New(2026, time.March, 10),
		EndDate:   dateonly.New(2026, time.March, 20),
		OnHands:   true,
		User:      queries.UserSummary{ID: s.userID, Email: "reader@example.com"},
		Book:      queries.BookSummary{ID: uuid.New(), Title: "The Go Programming Language"},
	}
}

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("success: 200 with one page", func() {
		view := s.sampleView()
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.ReservationFilters{}, uint(0)).
			Return([]*queries.ReservationView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reserv", nil, "")

		var response []*resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(view.ID, response[0].ID)
	})

	s.Run("success: 204 when the page is empty", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reserv", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 when on_hands and is_returned are both true", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrExclusiveStateFilters)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reserv?on_hands=True&is_returned=True", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest,
			"on hands and returned at the same moment")
	})

	s.Run("error: 400 on malformed filter date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reserv?start_date=15.03.2026", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "start_date")
	})
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	req := reqdto.CreateReservationRequest{
		BookID:    uuid.New(),
		BeginDate: dateonly.New(2026, time.March, 10),
		EndDate:   dateonly.New(2026, time.March, 20),
	}

	s.Run("success: 201 with the fresh reservation", func() {
		view := s.sampleView()
		s.mockCommands.EXPECT().
			Request(gomock.Any(), s.userID, req).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reserv", req, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.True(response.OnHands)
		s.False(response.IsReturned)
	})

	s.Run("error: 400 when the window is already booked", func() {
		s.mockCommands.EXPECT().
			Request(gomock.Any(), s.userID, req).
			Return(nil, commands.ErrBookAlreadyReserved)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reserv", req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest,
			"book already reserved for requested window")
	})

	s.Run("error: 400 when begin is after end", func() {
		s.mockCommands.EXPECT().
			Request(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, commands.ErrInvalidReservationPeriod)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reserv", req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest,
			"begin date must not be after end date")
	})

	s.Run("error: 404 when the book does not exist", func() {
		s.mockCommands.EXPECT().
			Request(gomock.Any(), s.userID, req).
			Return(nil, commands.ErrBookNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reserv", req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "book not found")
	})
}

func (s *ReservationHandlerTestSuite) TestReturn() {
	id := uuid.New()

	s.Run("success: 200 with the closed reservation", func() {
		view := s.sampleView()
		view.ID = id
		view.OnHands = false
		view.IsReturned = true
		s.mockCommands.EXPECT().Return(gomock.Any(), id).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reserv/"+id.String(), nil, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.IsReturned)
		s.False(response.OnHands)
	})

	s.Run("error: 404 for an unknown id", func() {
		s.mockCommands.EXPECT().Return(gomock.Any(), id).
			Return(nil, commands.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reserv/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})

	s.Run("error: 404 with a distinct message for a repeated return", func() {
		s.mockCommands.EXPECT().Return(gomock.Any(), id).
			Return(nil, commands.ErrReservationReturned)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reserv/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation already returned")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reserv/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid id format")
	})
}
