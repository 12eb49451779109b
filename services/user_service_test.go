package services

import (
	"testing"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserServiceCreateAndAuthenticate(t *testing.T) {
	svc := NewUserService(setupTestDB(t), nil)

	user := models.User{Username: "minh", Email: "minh@example.com", FullName: "Minh Tran"}
	require.NoError(t, svc.Create(&user, "s3cret"))
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "s3cret", user.Password)

	got, err := svc.Authenticate("minh", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate("minh", "wrong")
	assert.Error(t, err)
}

func TestUserServiceDuplicateUsernameRejected(t *testing.T) {
	svc := NewUserService(setupTestDB(t), nil)

	first := models.User{Username: "minh", Email: "minh@example.com"}
	require.NoError(t, svc.Create(&first, "pw"))

	dup := models.User{Username: "minh", Email: "other@example.com"}
	err := svc.Create(&dup, "pw")
	assert.ErrorIs(t, err, ErrConflict)

	// No new row was persisted.
	users, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserServiceDuplicateEmailRejected(t *testing.T) {
	svc := NewUserService(setupTestDB(t), nil)

	first := models.User{Username: "minh", Email: "minh@example.com"}
	require.NoError(t, svc.Create(&first, "pw"))

	dup := models.User{Username: "lan", Email: "minh@example.com"}
	assert.ErrorIs(t, svc.Create(&dup, "pw"), ErrConflict)
}

func TestUserServiceAdminProtected(t *testing.T) {
	svc := NewUserService(setupTestDB(t), nil)

	admin := models.User{Username: "root", Email: "root@example.com", Role: models.RoleAdmin}
	require.NoError(t, svc.Create(&admin, "pw"))

	assert.ErrorIs(t, svc.Delete(admin.ID), ErrConflict)
	assert.ErrorIs(t, svc.SetEnabled(admin.ID, false), ErrConflict)

	// Enabling an admin is a no-op, not a conflict.
	assert.NoError(t, svc.SetEnabled(admin.ID, true))

	got, err := svc.Get(admin.ID)
	require.NoError(t, err)
	assert.True(t, got.Enabled)
}

func TestUserServiceDeleteRegularUser(t *testing.T) {
	svc := NewUserService(setupTestDB(t), nil)

	user := models.User{Username: "minh", Email: "minh@example.com"}
	require.NoError(t, svc.Create(&user, "pw"))
	require.NoError(t, svc.Delete(user.ID))

	_, err := svc.Get(user.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserServiceUpdateKeepsPassword(t *testing.T) {
	svc := NewUserService(setupTestDB(t), nil)

	user := models.User{Username: "minh", Email: "minh@example.com"}
	require.NoError(t, svc.Create(&user, "pw"))

	user.FullName = "Minh T."
	require.NoError(t, svc.Update(&user))

	_, err := svc.Authenticate("minh", "pw")
	assert.NoError(t, err)
}
