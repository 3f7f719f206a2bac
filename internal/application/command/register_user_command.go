package command

import "github.com/soumya9832/notes-backend/internal/application/common"

type RegisterUserCommand struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterUserCommandResult struct {
	Result *common.UserResult `json:"result"`
}
