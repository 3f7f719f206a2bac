package interfaces

import (
	"github.com/google/uuid"
	"github.com/soumya9832/notes-backend/internal/application/command"
	"github.com/soumya9832/notes-backend/internal/application/query"
)

// NoteService performs every authenticated note operation. The caller
// username comes from the verified identity on the request; each method
// resolves it to a stored user before touching any note.
type NoteService interface {
	ListNotes(callerUsername string) (*query.NoteQueryListResult, error)
	CreateNote(callerUsername string, createCommand *command.CreateNoteCommand) (*command.CreateNoteCommandResult, error)
	UpdateNote(callerUsername string, noteId uuid.UUID, updateCommand *command.UpdateNoteCommand) (*command.UpdateNoteCommandResult, error)
	DeleteNote(callerUsername string, noteId uuid.UUID) error
	EnableSharing(callerUsername string, noteId uuid.UUID) (*command.ShareNoteCommandResult, error)
	DisableSharing(callerUsername string, noteId uuid.UUID) (*command.UnshareNoteCommandResult, error)
}
