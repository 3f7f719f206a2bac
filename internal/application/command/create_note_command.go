package command

import "github.com/soumya9832/notes-backend/internal/application/common"

type CreateNoteCommand struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreateNoteCommandResult struct {
	Result *common.NoteResult `json:"result"`
}
