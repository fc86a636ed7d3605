package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syntaxkim/project1/internal/apperrors"
)

func TestSignupThenSignin(t *testing.T) {
	auth := NewAuthService(newFakeUserStore(), nil)

	created, err := auth.Signup("alice", "abc123", "abc123")
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Name)
	assert.NotEqual(t, "abc123", created.PasswordHash)

	user, err := auth.Signin("alice", "abc123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "alice", user.Name)
}

func TestSignupPasswordMismatch(t *testing.T) {
	auth := NewAuthService(newFakeUserStore(), nil)

	_, err := auth.Signup("alice", "abc123", "abc124")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestSignupDuplicateNameConflicts(t *testing.T) {
	store := newFakeUserStore()
	auth := NewAuthService(store, nil)

	_, err := auth.Signup("alice", "abc123", "abc123")
	require.NoError(t, err)

	_, err = auth.Signup("alice", "other", "other")
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Len(t, store.users, 1)
}

func TestSigninErrorsAreIndistinguishable(t *testing.T) {
	auth := NewAuthService(newFakeUserStore(), nil)

	_, err := auth.Signup("alice", "abc123", "abc123")
	require.NoError(t, err)

	_, wrongPassword := auth.Signin("alice", "wrong")
	require.Error(t, wrongPassword)
	assert.True(t, apperrors.IsAuth(wrongPassword))

	_, noSuchUser := auth.Signin("nobody", "abc123")
	require.Error(t, noSuchUser)
	assert.True(t, apperrors.IsAuth(noSuchUser))

	// Same message for both, so usernames cannot be enumerated.
	assert.Equal(t, wrongPassword.Error(), noSuchUser.Error())
}

func TestChangePassword(t *testing.T) {
	store := newFakeUserStore()
	auth := NewAuthService(store, nil)

	user, err := auth.Signup("alice", "abc123", "abc123")
	require.NoError(t, err)

	// Wrong current password is rejected.
	err = auth.ChangePassword(user.ID, "wrong", "newpass", "newpass")
	require.Error(t, err)
	assert.True(t, apperrors.IsAuth(err))

	// Mismatched confirmation is rejected.
	err = auth.ChangePassword(user.ID, "abc123", "newpass", "other")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	// Valid change takes effect: old password stops working.
	err = auth.ChangePassword(user.ID, "abc123", "newpass", "newpass")
	require.NoError(t, err)

	_, err = auth.Signin("alice", "abc123")
	assert.True(t, apperrors.IsAuth(err))

	_, err = auth.Signin("alice", "newpass")
	assert.NoError(t, err)
}

func TestVerifyPassword(t *testing.T) {
	auth := NewAuthService(newFakeUserStore(), nil)

	user, err := auth.Signup("alice", "abc123", "abc123")
	require.NoError(t, err)

	assert.NoError(t, auth.VerifyPassword(user.ID, "abc123"))
	assert.True(t, apperrors.IsAuth(auth.VerifyPassword(user.ID, "wrong")))
}
