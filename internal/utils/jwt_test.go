package utils

import (
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karthika_back_end/internal/models"
)

func TestGenerateAndParseJWT(t *testing.T) {
	user := models.User{
		ID:    gocql.TimeUUID(),
		Email: "admin@karthikasecure.com",
		Role:  models.RoleAdmin,
	}

	token, err := GenerateJWT(user)
	require.NoError(t, err)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims["user_id"])
	assert.Equal(t, user.Email, claims["email"])
	assert.Equal(t, models.RoleAdmin, claims["role"])
}

func TestParseJWTRejectsTampering(t *testing.T) {
	token, err := GenerateJWT(models.User{ID: gocql.TimeUUID(), Role: models.RoleUser})
	require.NoError(t, err)

	_, err = ParseJWT(token + "x")
	assert.Error(t, err)

	_, err = ParseJWT("not-a-token")
	assert.Error(t, err)
}

func TestTokenExpiryFromEnv(t *testing.T) {
	t.Setenv("JWT_EXPIRE_HOURS", "48")
	assert.Equal(t, 48*time.Hour, TokenExpiry())

	t.Setenv("JWT_EXPIRE_HOURS", "")
	assert.Equal(t, 7*24*time.Hour, TokenExpiry())

	t.Setenv("JWT_EXPIRE_HOURS", "-3")
	assert.Equal(t, 7*24*time.Hour, TokenExpiry())
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPassword("secret123", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
