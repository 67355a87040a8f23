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

type AuthorHandler struct {
	commands commands.AuthorCommands
	queries  queries.AuthorQueries
}

func NewAuthorHandler(cmds commands.AuthorCommands, qrys queries.AuthorQueries) *AuthorHandler {
	return &AuthorHandler{
		commands: cmds,
		queries:  qrys,
	}
}

func (h *AuthorHandler) List(c *gin.Context) {
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

	resp, err := resdto.FromAuthorViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	respond(c, http.StatusOK, resp)
}

func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.queries.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrAuthorNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "author not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	resp, err := resdto.FromAuthorView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	respond(c, http.StatusOK, resp)
}

func (h *AuthorHandler) Create(c *gin.Context) {
	var req reqdto.CreateAuthorRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "invalid request format")
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req)
	if err != nil {
		h.abortWithCommandError(c, err)
		return
	}

	resp, err := resdto.FromAuthorView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	respond(c, http.StatusCreated, resp)
}

func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateAuthorRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "invalid request format")
		return
	}

	view, err := h.commands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.abortWithCommandError(c, err)
		return
	}

	resp, err := resdto.FromAuthorView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	respond(c, http.StatusOK, resp)
}

func (h *AuthorHandler) Delete(c *gin.Context) {
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

func (h *AuthorHandler) abortWithCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrAuthorNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "author not found")
	case errors.Is(err, commands.ErrAuthorInUse):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "author still referenced by books")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
	}
}
