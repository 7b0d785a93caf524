// internal/service/user_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"mussar_keep/internal/model"
	"mussar_keep/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func Test_userService_CreateUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewUserService(db, repository.NewGormUserRepository())

	user, err := svc.CreateUser(ctx, &model.CreateUserRequest{
		Email:    "moshe@example.com",
		Password: "a long password",
		FullName: strPtr("Moshe"),
	})
	require.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsSuperuser)

	// The stored password is a hash, not the plaintext.
	assert.NotEqual(t, "a long password", user.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("a long password")))
}

func Test_userService_CreateUser_ExplicitFlags(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewUserService(db, repository.NewGormUserRepository())

	user, err := svc.CreateUser(ctx, &model.CreateUserRequest{
		Email:       "admin@example.com",
		Password:    "a long password",
		IsActive:    boolPtr(false),
		IsSuperuser: boolPtr(true),
	})
	require.NoError(t, err)
	assert.False(t, user.IsActive)
	assert.True(t, user.IsSuperuser)

	// The flags must survive the round trip to the database, not just sit on
	// the returned struct: a false is_active is a zero value and is easy to
	// lose to a column default on insert.
	stored, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
	assert.True(t, stored.IsSuperuser)
}

func Test_userService_PatchUser_RehashesPassword(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewUserService(db, repository.NewGormUserRepository())

	user, err := svc.CreateUser(ctx, &model.CreateUserRequest{
		Email:    "moshe@example.com",
		Password: "old password",
	})
	require.NoError(t, err)

	patched, err := svc.PatchUser(ctx, user.ID, &model.PatchUserRequest{
		Password: strPtr("new password"),
		FullName: strPtr("Moshe Chaim"),
	})
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(patched.HashedPassword), []byte("new password")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(patched.HashedPassword), []byte("old password")))
	require.NotNil(t, patched.FullName)
	assert.Equal(t, "Moshe Chaim", *patched.FullName)
	assert.Equal(t, "moshe@example.com", patched.Email)
}

func Test_userService_DeleteUser_NotFound(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewUserService(db, repository.NewGormUserRepository())

	err := svc.DeleteUser(ctx, uuid.New())
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func Test_userService_EnsureFirstSuperuser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewUserService(db, repository.NewGormUserRepository())

	require.NoError(t, svc.EnsureFirstSuperuser(ctx, "boot@example.com", "bootstrap pw"))

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.True(t, users[0].IsSuperuser)
	assert.True(t, users[0].IsActive)

	// Idempotent: a second call does not create a duplicate.
	require.NoError(t, svc.EnsureFirstSuperuser(ctx, "boot@example.com", "bootstrap pw"))
	users, err = svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func Test_userService_EnsureFirstSuperuser_Unconfigured(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewUserService(db, repository.NewGormUserRepository())

	// Blank config means no bootstrap user.
	require.NoError(t, svc.EnsureFirstSuperuser(ctx, "", ""))

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}
