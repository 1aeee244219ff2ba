package utils

import (
	"testing"

	"insights/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAdminToken(&models.AdminClaims{
		UserID: 7,
		Email:  "ops@example.com",
		Role:   "admin",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "ops@example.com", claims.Email)
	assert.True(t, claims.IsAdmin())
}

func TestParseAdminToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateAdminToken(&models.AdminClaims{UserID: 1, Role: "admin"})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = ParseAdminToken(token)
	assert.Error(t, err)
}

func TestGenerateAdminToken_NoSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateAdminToken(&models.AdminClaims{UserID: 1})
	assert.Error(t, err)
}
