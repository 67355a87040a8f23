package api

import (
	"errors"
	"net/http"

	reqdto "book-catalog/internal/handler/dto/request"
	resdto "book-catalog/internal/handler/dto/response"
	"book-catalog/internal/handler/httperr"
	"book-catalog/internal/usecase/commands"
	"book-catalog/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GenreHandler struct {
	commands commands.GenreCommands
	queries  queries.GenreQueries
}

func NewGenreHandler(cmds commands.GenreCommands, qrys queries.GenreQueries) *GenreHandler {
	return &GenreHandler{
		commands: cmds,
		queries:  qrys,
	}
}

func (h *GenreHandler) List(c *gin.Context) {
	page, ok := parsePageQuery(c)
	if !ok {
		return
	}

	views, err := h.queries.List(c.Request.Context(), page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	if len(views) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp, err := resdto.FromGenreViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	respond(c, http.StatusOK, resp)
}

func (h *GenreHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.queries.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrGenreNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "genre not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	resp, err := resdto.FromGenreView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	respond(c, http.StatusOK, resp)
}

func (h *GenreHandler) Create(c *gin.Context) {
	var req reqdto.CreateGenreRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "invalid request format")
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req)
	if err != nil {
		h.abortWithCommandError(c, err)
		return
	}

	resp, err := resdto.FromGenreView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	respond(c, http.StatusCreated, resp)
}

func (h *GenreHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateGenreRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "invalid request format")
		return
	}

	view, err := h.commands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.abortWithCommandError(c, err)
		return
	}

	resp, err := resdto.FromGenreView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	respond(c, http.StatusOK, resp)
}

func (h *GenreHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		h.abortWithCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *GenreHandler) abortWithCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrGenreNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "genre not found")
	case errors.Is(err, commands.ErrGenreAlreadyExist):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "genre title already exists")
	case errors.Is(err, commands.ErrGenreInUse):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "genre still referenced by books")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
	}
}
