package postgres

import (
	"errors"

	"github.com/google/uuid"
	"github.com/soumya9832/notes-backend/internal/domain/entities"
	"github.com/soumya9832/notes-backend/internal/domain/repositories"
	"gorm.io/gorm"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) repositories.NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Save(note *entities.ValidatedNote) (*entities.Note, error) {
	noteEntity := note.GetNote()

	noteModel := NoteModel{
		Id:         noteEntity.Id,
		CreatedAt:  noteEntity.CreatedAt,
		UpdatedAt:  noteEntity.UpdatedAt,
		Title:      noteEntity.Title,
		Content:    noteEntity.Content,
		OwnerId:    noteEntity.OwnerId,
		ShareToken: noteEntity.ShareToken,
	}

	if err := r.db.Save(&noteModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) && noteEntity.ShareToken != nil {
			return nil, repositories.ErrDuplicateShareToken
		}
		return nil, err
	}

	// Read back the saved note to ensure data integrity
	return r.FindById(noteEntity.Id)
}

func (r *NoteRepository) FindById(id uuid.UUID) (*entities.Note, error) {
	var noteModel NoteModel
	if err := r.db.Where("id = ?", id).First(&noteModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&noteModel), nil
}

func (r *NoteRepository) FindByOwner(ownerId uuid.UUID) ([]*entities.Note, error) {
	var noteModels []NoteModel
	if err := r.db.Where("owner_id = ?", ownerId).Order("created_at").Find(&noteModels).Error; err != nil {
		return nil, err
	}

	notes := make([]*entities.Note, 0, len(noteModels))
	for i := range noteModels {
		notes = append(notes, r.mapToEntity(&noteModels[i]))
	}
	return notes, nil
}

func (r *NoteRepository) FindByShareToken(token string) (*entities.Note, error) {
	var noteModel NoteModel
	if err := r.db.Where("share_token = ?", token).First(&noteModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&noteModel), nil
}

func (r *NoteRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&NoteModel{}, "id = ?", id).Error
}

func (r *NoteRepository) mapToEntity(noteModel *NoteModel) *entities.Note {
	return &entities.Note{
		Id:         noteModel.Id,
		CreatedAt:  noteModel.CreatedAt,
		UpdatedAt:  noteModel.UpdatedAt,
		Title:      noteModel.Title,
		Content:    noteModel.Content,
		OwnerId:    noteModel.OwnerId,
		ShareToken: noteModel.ShareToken,
	}
}
