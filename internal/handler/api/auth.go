package api

import (
	"errors"
	"net/http"

	reqdto "book-catalog/internal/handler/dto/request"
	resdto "book-catalog/internal/handler/dto/response"
	"book-catalog/internal/handler/httperr"
	"book-catalog/internal/handler/middleware"
	"book-catalog/internal/usecase/commands"
	"book-catalog/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	commands commands.AuthCommands
	users    queries.UserQueries
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries) *AuthHandler {
	return &AuthHandler{
		commands: cmds,
		users:    users,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "invalid request format")
		return
	}

	result, err := h.commands.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailAlreadyTaken):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "email already registered")
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid email or password")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		}
		return
	}

	resp, err := resdto.FromAuthResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	respond(c, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "invalid request format")
		return
	}

	result, err := h.commands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "invalid email or password")
		case errors.Is(err, commands.ErrInactiveUser):
			httperr.AbortWithError(c, http.StatusForbidden, err, "user account is inactive")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		}
		return
	}

	resp, err := resdto.FromAuthResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	respond(c, http.StatusOK, resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errors.New("user id missing from context"), "internal server error")
		return
	}

	view, err := h.users.GetCurrent(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "user not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	resp, err := resdto.FromUserView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	respond(c, http.StatusOK, resp)
}
