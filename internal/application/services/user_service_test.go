package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soumya9832/notes-backend/internal/application/command"
	"github.com/soumya9832/notes-backend/internal/application/interfaces"
	"github.com/soumya9832/notes-backend/internal/infrastructure"
)

func newUserServiceFixture(t *testing.T, loginLimit int) interfaces.UserService {
	t.Helper()

	return NewUserService(
		newFakeUserRepository(),
		infrastructure.NewJWTService("test-secret", time.Hour),
		infrastructure.NewRedisService("", "", 0),
		infrastructure.NewRateLimiter(time.Minute, loginLimit),
		time.Hour,
	)
}

func TestRegisterUser(t *testing.T) {
	userService := newUserServiceFixture(t, 10)

	result, err := userService.RegisterUser(&command.RegisterUserCommand{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "alice", result.Result.Username)
}

func TestRegisterUserDuplicateUsername(t *testing.T) {
	userService := newUserServiceFixture(t, 10)

	_, err := userService.RegisterUser(&command.RegisterUserCommand{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	_, err = userService.RegisterUser(&command.RegisterUserCommand{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginUser(t *testing.T) {
	userService := newUserServiceFixture(t, 10)

	_, err := userService.RegisterUser(&command.RegisterUserCommand{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	result, err := userService.LoginUser(&command.LoginUserCommand{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "alice", result.User.Username)
}

func TestLoginUserInvalidCredentials(t *testing.T) {
	userService := newUserServiceFixture(t, 10)

	_, err := userService.RegisterUser(&command.RegisterUserCommand{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	_, err = userService.LoginUser(&command.LoginUserCommand{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = userService.LoginUser(&command.LoginUserCommand{Username: "nobody", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserRateLimited(t *testing.T) {
	userService := newUserServiceFixture(t, 2)

	_, err := userService.RegisterUser(&command.RegisterUserCommand{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = userService.LoginUser(&command.LoginUserCommand{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	_, err = userService.LoginUser(&command.LoginUserCommand{Username: "alice", Password: "pw"})
	assert.ErrorIs(t, err, ErrTooManyLoginAttempts)
}
