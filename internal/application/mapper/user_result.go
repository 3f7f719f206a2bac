package mapper

import (
	"github.com/soumya9832/notes-backend/internal/application/common"
	"github.com/soumya9832/notes-backend/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:        user.Id,
		CreatedAt: user.CreatedAt,
		Username:  user.Username,
	}
}
