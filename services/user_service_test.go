package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visitor-http-service/models"
)

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig(t))

	require.NoError(t, svc.CreateUser(&models.User{
		Username: "frontdesk",
		Email:    "frontdesk@example.com",
		Password: "secret123",
		IsActive: true,
	}))

	user, err := svc.Authenticate("frontdesk", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "frontdesk", user.Username)
	assert.Equal(t, models.UserRoleUser, user.Role)

	_, err = svc.Authenticate("frontdesk", "wrong-password")
	require.EqualError(t, err, "invalid username or password")

	_, err = svc.Authenticate("nobody", "secret123")
	require.EqualError(t, err, "invalid username or password")
}

func TestAuthenticateRejectsDisabledAccount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig(t))

	require.NoError(t, svc.CreateUser(&models.User{
		Username: "frontdesk",
		Email:    "frontdesk@example.com",
		Password: "secret123",
		IsActive: true,
	}))

	_, err := svc.UpdateUser(1, map[string]interface{}{"is_active": false})
	require.NoError(t, err)

	_, err = svc.Authenticate("frontdesk", "secret123")
	require.EqualError(t, err, "user account is disabled")
}

func TestCreateUserUniqueness(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig(t))

	require.NoError(t, svc.CreateUser(&models.User{
		Username: "frontdesk",
		Email:    "frontdesk@example.com",
		Password: "secret123",
		IsActive: true,
	}))

	err := svc.CreateUser(&models.User{
		Username: "frontdesk",
		Email:    "other@example.com",
		Password: "secret123",
	})
	require.EqualError(t, err, "username already exists")

	err = svc.CreateUser(&models.User{
		Username: "other",
		Email:    "frontdesk@example.com",
		Password: "secret123",
	})
	require.EqualError(t, err, "email already in use")
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig(t))

	require.NoError(t, svc.CreateUser(&models.User{
		Username: "frontdesk",
		Email:    "frontdesk@example.com",
		Password: "secret123",
		IsActive: true,
	}))

	_, err := svc.UpdateUser(1, map[string]interface{}{"password": "newsecret456"})
	require.NoError(t, err)

	_, err = svc.Authenticate("frontdesk", "secret123")
	require.Error(t, err)

	user, err := svc.Authenticate("frontdesk", "newsecret456")
	require.NoError(t, err)
	assert.NotEqual(t, "newsecret456", user.Password)
}

func TestDeleteUserKeepsLastAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig(t))

	require.NoError(t, svc.CreateUser(&models.User{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "admin123",
		Role:     models.UserRoleAdmin,
		IsActive: true,
	}))

	err := svc.DeleteUser(1)
	require.EqualError(t, err, "cannot delete the last admin user")

	require.NoError(t, svc.CreateUser(&models.User{
		Username: "admin2",
		Email:    "admin2@example.com",
		Password: "admin123",
		Role:     models.UserRoleAdmin,
		IsActive: true,
	}))

	require.NoError(t, svc.DeleteUser(1))
}
