package repositories

import (
	"github.com/google/uuid"
	"github.com/soumya9832/notes-backend/internal/domain/entities"
)

// NoteRepository is the persistence contract for notes. Save is an
// insert-or-update; implementations must report share-token uniqueness
// conflicts as ErrDuplicateShareToken. Find methods return (nil, nil)
// when no row matches.
type NoteRepository interface {
	Save(note *entities.ValidatedNote) (*entities.Note, error)
	FindById(id uuid.UUID) (*entities.Note, error)
	FindByOwner(ownerId uuid.UUID) ([]*entities.Note, error)
	FindByShareToken(token string) (*entities.Note, error)
	Delete(id uuid.UUID) error
}
