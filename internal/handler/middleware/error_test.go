//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"book-catalog/internal/handler/httperr"
	"book-catalog/internal/handler/middleware"
	"book-catalog/internal/pkg/errs"
	"book-catalog/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.CustomRecovery())
	s.router.Use(middleware.ErrorHandler())
}

func TestErrorHandlerSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) TestPublicErrorEnvelope() {
	s.router.GET("/boom", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("bad input"), "invalid request format")
	})

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/boom", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid request format")
}

func (s *ErrorHandlerTestSuite) TestInternalErrorKeepsGenericMessage() {
	s.router.GET("/fail", func(c *gin.Context) {
		cause := errs.Wrap(errs.New("connection refused"), "failed to list books")
		httperr.AbortWithError(c, http.StatusInternalServerError, cause, "internal server error")
	})

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/fail", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "internal server error")
}

func (s *ErrorHandlerTestSuite) TestPanicRecovery() {
	s.router.GET("/panic", func(_ *gin.Context) {
		panic("unexpected")
	})

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "internal server error")
}

