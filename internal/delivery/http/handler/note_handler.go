package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/soumya9832/notes-backend/internal/application/command"
	"github.com/soumya9832/notes-backend/internal/application/interfaces"
	"github.com/soumya9832/notes-backend/internal/delivery/http/middleware"
)

type NoteHandler struct {
	noteService interfaces.NoteService
}

func NewNoteHandler(noteService interfaces.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func callerUsername(c echo.Context) string {
	username, _ := c.Get(middleware.UsernameContextKey).(string)
	return username
}

func noteId(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid note id")
	}
	return id, nil
}

func (h *NoteHandler) List(c echo.Context) error {
	result, err := h.noteService.ListNotes(callerUsername(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *NoteHandler) Create(c echo.Context) error {
	var createCommand command.CreateNoteCommand
	if err := c.Bind(&createCommand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.noteService.CreateNote(callerUsername(c), &createCommand)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, result.Result)
}

func (h *NoteHandler) Update(c echo.Context) error {
	id, err := noteId(c)
	if err != nil {
		return err
	}

	var updateCommand command.UpdateNoteCommand
	if err := c.Bind(&updateCommand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.noteService.UpdateNote(callerUsername(c), id, &updateCommand)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *NoteHandler) Delete(c echo.Context) error {
	id, err := noteId(c)
	if err != nil {
		return err
	}

	if err := h.noteService.DeleteNote(callerUsername(c), id); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *NoteHandler) Share(c echo.Context) error {
	id, err := noteId(c)
	if err != nil {
		return err
	}

	result, err := h.noteService.EnableSharing(callerUsername(c), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *NoteHandler) Unshare(c echo.Context) error {
	id, err := noteId(c)
	if err != nil {
		return err
	}

	result, err := h.noteService.DisableSharing(callerUsername(c), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}
