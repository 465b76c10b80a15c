package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivanand-hulikatti/event-management/internal/apperror"
	"github.com/Shivanand-hulikatti/event-management/internal/auth"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("creator@example.com", "opaque-hash", auth.RoleEventCreator)
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "creator@example.com", user.Email)
	assert.Equal(t, "opaque-hash", user.PasswordHash)
	assert.Equal(t, auth.RoleEventCreator, user.Role)
	assert.True(t, user.IsActive)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestNewUserValidation(t *testing.T) {
	_, err := NewUser("", "hash", auth.RoleEventParticipant)
	assert.True(t, errors.Is(err, apperror.ErrValidation))

	_, err = NewUser("a@b.c", "  ", auth.RoleEventParticipant)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}
