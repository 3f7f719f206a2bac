package command

import "github.com/soumya9832/notes-backend/internal/application/common"

type UpdateNoteCommand struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdateNoteCommandResult struct {
	Result *common.NoteResult `json:"result"`
}
