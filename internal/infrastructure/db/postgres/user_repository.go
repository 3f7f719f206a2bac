package postgres

import (
	"errors"

	"github.com/google/uuid"
	"github.com/soumya9832/notes-backend/internal/domain/entities"
	"github.com/soumya9832/notes-backend/internal/domain/repositories"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	// Hash password before saving
	if err := userEntity.HashPassword(); err != nil {
		return nil, err
	}

	userModel := UserModel{
		Id:        userEntity.Id,
		CreatedAt: userEntity.CreatedAt,
		Username:  userEntity.Username,
		Password:  userEntity.Password,
	}

	if err := r.db.Create(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, repositories.ErrDuplicateUsername
		}
		return nil, err
	}

	// Read back the created user to ensure data integrity
	return r.FindById(userEntity.Id)
}

func (r *UserRepository) FindById(id uuid.UUID) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByUsername(username string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&UserModel{}, "id = ?", id).Error
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		Id:        userModel.Id,
		CreatedAt: userModel.CreatedAt,
		Username:  userModel.Username,
		Password:  userModel.Password,
	}
}
