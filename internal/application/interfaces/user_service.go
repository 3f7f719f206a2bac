package interfaces

import "github.com/soumya9832/notes-backend/internal/application/command"

type UserService interface {
	RegisterUser(registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	LoginUser(loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
}
