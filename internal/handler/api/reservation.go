package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "book-catalog/internal/handler/dto/request"
	resdto "book-catalog/internal/handler/dto/response"
	"book-catalog/internal/handler/httperr"
	"book-catalog/internal/handler/middleware"
	"book-catalog/internal/pkg/dateonly"
	"book-catalog/internal/usecase/commands"
	"book-catalog/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, qrys queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  qrys,
	}
}

// List returns one page of reservations, newest booking window last.
// An empty page is 204, matching the catalog's list endpoints.
func (h *ReservationHandler) List(c *gin.Context) {
	filters, ok := h.parseFilters(c)
	if !ok {
		return
	}

	page, ok := parsePageQuery(c)
	if !ok {
		return
	}

	views, err := h.queries.List(c.Request.Context(), filters, page)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrExclusiveStateFilters):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				"a book cannot be on hands and returned at the same moment")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		}
		return
	}

	if len(views) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp, err := resdto.FromReservationViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	respond(c, http.StatusOK, resp)
}

// Create books a reservation for the authenticated user.
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errors.New("user id missing from context"), "internal server error")
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "invalid request format")
		return
	}

	view, err := h.commands.Request(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidReservationPeriod):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				"begin date must not be after end date")
		case errors.Is(err, commands.ErrBookAlreadyReserved):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				"book already reserved for requested window")
		case errors.Is(err, commands.ErrBookNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "book not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		}
		return
	}

	resp, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	respond(c, http.StatusCreated, resp)
}

// Return closes a reservation. Unknown ids and repeated returns report
// different messages so the client can tell them apart.
func (h *ReservationHandler) Return(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.commands.Return(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "reservation not found")
		case errors.Is(err, commands.ErrReservationReturned):
			httperr.AbortWithError(c, http.StatusNotFound, err, "reservation already returned")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		}
		return
	}

	resp, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	respond(c, http.StatusOK, resp)
}

func (h *ReservationHandler) parseFilters(c *gin.Context) (queries.ReservationFilters, bool) {
	var filters queries.ReservationFilters

	if title := c.Query("book_title"); title != "" {
		filters.BookTitle = &title
	}

	if raw := c.Query("start_date"); raw != "" {
		d, err := dateonly.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid start_date format")
			return filters, false
		}
		filters.StartDate = &d
	}

	if raw := c.Query("end_date"); raw != "" {
		d, err := dateonly.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid end_date format")
			return filters, false
		}
		filters.EndDate = &d
	}

	if raw := c.Query("on_hands"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid on_hands value")
			return filters, false
		}
		filters.OnHands = &v
	}

	if raw := c.Query("is_returned"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid is_returned value")
			return filters, false
		}
		filters.IsReturned = &v
	}

	return filters, true
}
