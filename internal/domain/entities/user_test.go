package entities

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user := NewUser("alice", "s3cret")

	assert.NotEqual(t, uuid.Nil, user.Id)
	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserValidation(t *testing.T) {
	_, err := NewValidatedUser(NewUser("", "pw"))
	assert.Error(t, err)

	_, err = NewValidatedUser(NewUser("alice", ""))
	assert.Error(t, err)

	_, err = NewValidatedUser(NewUser("alice", "pw"))
	assert.NoError(t, err)
}

func TestPasswordHashing(t *testing.T) {
	user := NewUser("alice", "s3cret")
	require.NoError(t, user.HashPassword())

	assert.NotEqual(t, "s3cret", user.Password)
	assert.NoError(t, user.CheckPassword("s3cret"))
	assert.Error(t, user.CheckPassword("wrong"))
}
