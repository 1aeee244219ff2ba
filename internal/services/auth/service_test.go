package auth

import (
	"errors"
	"testing"

	"insights/internal/models"
	"insights/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	users map[string]*models.AdminUser
}

func (f *fakeAdminRepo) GetByEmail(email string) (*models.AdminUser, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, errors.New("record not found")
	}
	return user, nil
}

func (f *fakeAdminRepo) Create(user *models.AdminUser) error {
	f.users[user.Email] = user
	return nil
}

func newFakeRepo(t *testing.T, email, password string) *fakeAdminRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &fakeAdminRepo{users: map[string]*models.AdminUser{
		email: {Email: email, Password: string(hash), Role: "admin"},
	}}
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(newFakeRepo(t, "ops@example.com", "hunter22"))

	token, err := svc.Login("ops@example.com", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Email)
	assert.True(t, claims.IsAdmin())
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(newFakeRepo(t, "ops@example.com", "hunter22"))

	_, err := svc.Login("ops@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(newFakeRepo(t, "ops@example.com", "hunter22"))

	_, err := svc.Login("nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
