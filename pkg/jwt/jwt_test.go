package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, 1001, TokenTypeAccess, time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(secret, TokenTypeAccess, token)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), claims.UserID)
}

func TestParse_WrongType(t *testing.T) {
	token, err := GenerateToken(secret, 1, "refresh", time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, TokenTypeAccess, token)
	assert.Error(t, err)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, 1, TokenTypeAccess, time.Minute)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other"), TokenTypeAccess, token)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	token, err := GenerateToken(secret, 1, TokenTypeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, TokenTypeAccess, token)
	assert.Error(t, err)
}
