package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/soumya9832/notes-backend/internal/application/command"
	"github.com/soumya9832/notes-backend/internal/application/interfaces"
)

type AuthHandler struct {
	userService interfaces.UserService
}

func NewAuthHandler(userService interfaces.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var registerCommand command.RegisterUserCommand
	if err := c.Bind(&registerCommand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if registerCommand.Username == "" || registerCommand.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	result, err := h.userService.RegisterUser(&registerCommand)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, result.Result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var loginCommand command.LoginUserCommand
	if err := c.Bind(&loginCommand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.userService.LoginUser(&loginCommand)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}
