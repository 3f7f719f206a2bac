package services

import (
	"github.com/soumya9832/notes-backend/internal/application/interfaces"
	"github.com/soumya9832/notes-backend/internal/application/mapper"
	"github.com/soumya9832/notes-backend/internal/application/query"
	"github.com/soumya9832/notes-backend/internal/domain/repositories"
)

// ShareResolver answers unauthenticated reads. The token is matched
// exactly as given; there is no identity on this path at all.
type ShareResolver struct {
	noteRepo repositories.NoteRepository
}

func NewShareResolver(noteRepo repositories.NoteRepository) interfaces.ShareResolver {
	return &ShareResolver{noteRepo: noteRepo}
}

func (s *ShareResolver) Resolve(token string) (*query.SharedNoteQueryResult, error) {
	if token == "" {
		return nil, ErrNoteNotFound
	}

	note, err := s.noteRepo.FindByShareToken(token)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	return &query.SharedNoteQueryResult{
		Result: mapper.NewSharedNoteResultFromEntity(note),
	}, nil
}
