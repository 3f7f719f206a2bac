package query

import "github.com/soumya9832/notes-backend/internal/application/common"

type NoteQueryResult struct {
	Result *common.NoteResult `json:"result"`
}

type NoteQueryListResult struct {
	Result []*common.NoteResult `json:"result"`
}

type SharedNoteQueryResult struct {
	Result *common.SharedNoteResult `json:"result"`
}
