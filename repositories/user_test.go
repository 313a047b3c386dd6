package repositories

import (
	"testing"

	"chat-relay/errors"

	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create_And_Lookup(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openTestDB(t))

	id, err := repository.CreateUser("alice@example.com", "Alice", "$argon2id$fake")
	req.NoError(err)
	req.NotEmpty(id)

	user, err := repository.GetUserByEmail("alice@example.com")
	req.NoError(err)
	req.Equal(id, user.ID)
	req.Equal("Alice", user.DisplayName)
	req.Equal([]string{"user"}, user.Roles)

	exists, err := repository.Exists(id)
	req.NoError(err)
	req.True(exists)

	exists, err = repository.Exists("unknown-id")
	req.NoError(err)
	req.False(exists)
}

func TestUserRepository_Duplicate_Email(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openTestDB(t))

	_, err := repository.CreateUser("alice@example.com", "Alice", "hash")
	req.NoError(err)

	_, err = repository.CreateUser("alice@example.com", "Imposter", "hash")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)
}
