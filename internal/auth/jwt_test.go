package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	manager := NewTokenManager([]byte("test-secret"), 30*time.Minute, 7*24*time.Hour)

	token, err := manager.GenerateAccessToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := manager.UserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), userID)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	manager := NewTokenManager([]byte("test-secret"), -time.Minute, 7*24*time.Hour)

	token, err := manager.GenerateAccessToken(42)
	require.NoError(t, err)

	_, err = manager.UserIDFromToken(token)
	assert.Error(t, err)
}

func TestTokenManager_WrongKey(t *testing.T) {
	manager := NewTokenManager([]byte("test-secret"), 30*time.Minute, 7*24*time.Hour)
	other := NewTokenManager([]byte("other-secret"), 30*time.Minute, 7*24*time.Hour)

	token, err := manager.GenerateAccessToken(42)
	require.NoError(t, err)

	_, err = other.UserIDFromToken(token)
	assert.Error(t, err)
}

func TestTokenManager_GarbageToken(t *testing.T) {
	manager := NewTokenManager([]byte("test-secret"), 30*time.Minute, 7*24*time.Hour)

	_, err := manager.UserIDFromToken("not.a.token")
	assert.Error(t, err)
}
