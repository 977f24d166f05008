package tokens

import (
	"testing"

	"github.com/bennyhinn18/bank-application/db/models"
	"github.com/stretchr/testify/assert"
)

func TestRefreshTokenRoundTrip(t *testing.T) {
	secret := []byte("test secret")
	user := &models.User{ID: 42, Login: "alice"}

	refreshToken, err := GenerateRefreshToken(secret, 3600, user)
	assert.NoError(t, err)

	userId, err := GetUserIdFromToken(secret, refreshToken)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userId)
}

func TestAccessTokenIsNotARefreshToken(t *testing.T) {
	secret := []byte("test secret")
	user := &models.User{ID: 42, Login: "alice"}

	accessToken, err := GenerateAccessToken(secret, 3600, user)
	assert.NoError(t, err)

	_, err = GetUserIdFromToken(secret, accessToken)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	user := &models.User{ID: 7}

	refreshToken, err := GenerateRefreshToken([]byte("one secret"), 3600, user)
	assert.NoError(t, err)

	_, err = GetUserIdFromToken([]byte("another secret"), refreshToken)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	secret := []byte("test secret")
	user := &models.User{ID: 7}

	refreshToken, err := GenerateRefreshToken(secret, -60, user)
	assert.NoError(t, err)

	_, err = GetUserIdFromToken(secret, refreshToken)
	assert.Error(t, err)
}
