package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/soumya9832/notes-backend/internal/application/interfaces"
)

// ShareHandler serves the single unauthenticated endpoint.
type ShareHandler struct {
	shareResolver interfaces.ShareResolver
}

func NewShareHandler(shareResolver interfaces.ShareResolver) *ShareHandler {
	return &ShareHandler{shareResolver: shareResolver}
}

func (h *ShareHandler) Resolve(c echo.Context) error {
	result, err := h.shareResolver.Resolve(c.Param("token"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result.Result)
}
