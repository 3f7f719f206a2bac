package repositories

import (
	"github.com/google/uuid"
	"github.com/soumya9832/notes-backend/internal/domain/entities"
)

type UserRepository interface {
	Create(user *entities.ValidatedUser) (*entities.User, error)
	FindById(id uuid.UUID) (*entities.User, error)
	FindByUsername(username string) (*entities.User, error)
	Delete(id uuid.UUID) error
}
