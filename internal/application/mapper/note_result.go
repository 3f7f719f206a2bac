package mapper

import (
	"github.com/soumya9832/notes-backend/internal/application/common"
	"github.com/soumya9832/notes-backend/internal/domain/entities"
)

func NewNoteResultFromEntity(note *entities.Note) *common.NoteResult {
	return &common.NoteResult{
		Id:        note.Id,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
		Title:     note.Title,
		Content:   note.Content,
		Shared:    note.IsShared(),
	}
}

// NewSharedNoteResultFromEntity builds the public projection. The owner
// and the share token itself stay out of the payload.
func NewSharedNoteResultFromEntity(note *entities.Note) *common.SharedNoteResult {
	return &common.SharedNoteResult{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
