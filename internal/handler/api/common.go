package api

import (
	"net/http"
	"strconv"

	"book-catalog/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respond wraps the payload in the success envelope.
func respond(c *gin.Context, status int, payload any) {
	c.JSON(status, gin.H{"response": payload})
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid id format")
		return uuid.Nil, false
	}
	return id, true
}

func parsePageQuery(c *gin.Context) (uint, bool) {
	raw := c.Query("page_number")
	if raw == "" {
		return 0, true
	}

	page, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid page number")
		return 0, false
	}
	return uint(page), true
}
