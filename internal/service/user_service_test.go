package service

import (
	"testing"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser_HashesPasswordAndOmitsItFromResponse(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	resp, err := svc.Create(ctxBg(), dto.CreateUserRequest{
		Username: "adiaz",
		Email:    "adiaz@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, resp.Role, "role defaults to user")
	assert.True(t, resp.IsActive)

	var stored model.User
	require.NoError(t, db.First(&stored, resp.ID).Error)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")))
}

func TestCreateUser_DuplicateUsernameIsConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	_, err := svc.Create(ctxBg(), dto.CreateUserRequest{
		Username: "adiaz", Email: "adiaz@example.com", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctxBg(), dto.CreateUserRequest{
		Username: "adiaz", Email: "other@example.com", Password: "s3cret-pass",
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.AsError(err).Kind)
}

func TestUpdateUser_RehashesNewPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	created, err := svc.Create(ctxBg(), dto.CreateUserRequest{
		Username: "adiaz", Email: "adiaz@example.com", Password: "old-password",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctxBg(), created.ID, dto.UpdateUserRequest{Password: strPtr("new-password")})
	require.NoError(t, err)

	var stored model.User
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-password")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("old-password")))
}

func TestUpdateUser_DeactivateKeepsOtherFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	created, err := svc.Create(ctxBg(), dto.CreateUserRequest{
		Username: "adiaz", Email: "adiaz@example.com", Password: "s3cret-pass", Role: model.RoleAdmin,
	})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(ctxBg(), created.ID, dto.UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, model.RoleAdmin, updated.Role)
	assert.Equal(t, "adiaz", updated.Username)
}

func TestDeleteUser_MissingIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	err := svc.Delete(ctxBg(), 77)
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.AsError(err).Kind)
}
