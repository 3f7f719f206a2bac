package command

import "github.com/soumya9832/notes-backend/internal/application/common"

type LoginUserCommand struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginUserCommandResult struct {
	Token string             `json:"token"`
	User  *common.UserResult `json:"user"`
}
