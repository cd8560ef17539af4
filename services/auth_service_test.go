package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campus-market/infra"
	"campus-market/models"
	"campus-market/repositories"
)

func setupAuthService(t *testing.T) (IAuthService, *gorm.DB) {
	t.Helper()
	db := infra.SetupTestDB()
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return NewAuthService(repositories.NewAuthRepository(db)), db
}

func TestSignupHashesPassword(t *testing.T) {
	svc, _ := setupAuthService(t)

	user, err := svc.Signup("alice", "secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestSignupHashesAreSalted(t *testing.T) {
	svc, _ := setupAuthService(t)

	a, err := svc.Signup("alice", "secret123")
	require.NoError(t, err)
	b, err := svc.Signup("bob", "secret123")
	require.NoError(t, err)

	assert.NotEqual(t, a.Password, b.Password)
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc, db := setupAuthService(t)

	_, err := svc.Signup("alice", "secret123")
	require.NoError(t, err)

	_, err = svc.Signup("alice", "another-pass")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLogin(t *testing.T) {
	svc, _ := setupAuthService(t)
	_, err := svc.Signup("alice", "secret123")
	require.NoError(t, err)

	user, err := svc.Login("alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.Login("alice", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown user yields the same error as a wrong password.
	_, err = svc.Login("nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
