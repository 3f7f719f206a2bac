package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/soumya9832/notes-backend/internal/application/services"
)

// httpError maps service errors onto HTTP status codes. Forbidden and
// NotFound bodies stay deliberately vague so nothing about the note or
// its owner leaks.
func httpError(err error) error {
	switch {
	case errors.Is(err, services.ErrIdentityNotResolved):
		return echo.NewHTTPError(http.StatusUnauthorized, "could not resolve caller identity")
	case errors.Is(err, services.ErrNoteNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "note not found")
	case errors.Is(err, services.ErrNotNoteOwner):
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	case errors.Is(err, services.ErrUsernameTaken):
		return echo.NewHTTPError(http.StatusConflict, services.ErrUsernameTaken.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, services.ErrInvalidCredentials.Error())
	case errors.Is(err, services.ErrTooManyLoginAttempts):
		return echo.NewHTTPError(http.StatusTooManyRequests, services.ErrTooManyLoginAttempts.Error())
	case errors.Is(err, services.ErrShareTokenExhausted):
		return echo.NewHTTPError(http.StatusInternalServerError, services.ErrShareTokenExhausted.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
