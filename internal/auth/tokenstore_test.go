package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStore_RoundTrip(t *testing.T) {
	store := NewTokenStore(NewMemoryStorage())

	err := store.Save("tok-abc123", UserInfo{ID: 7, Username: "ivanova", Role: "employer"})
	require.NoError(t, err)

	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-abc123", token)

	info, ok := store.UserInfo()
	require.True(t, ok)
	assert.Equal(t, int64(7), info.ID)
	assert.Equal(t, "ivanova", info.Username)
	assert.Equal(t, "employer", info.Role)
}

func TestTokenStore_EmptyStorage(t *testing.T) {
	store := NewTokenStore(NewMemoryStorage())

	_, ok := store.Token()
	assert.False(t, ok)

	_, ok = store.UserInfo()
	assert.False(t, ok)
}

// A corrupted stored value must read as "no session", not crash the caller.
func TestTokenStore_MalformedUserInfo(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set("auth_token", "tok-abc123"))
	require.NoError(t, storage.Set("user_info", "{not json"))

	store := NewTokenStore(storage)

	token, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok-abc123", token)

	_, ok = store.UserInfo()
	assert.False(t, ok, "malformed user info must not surface a record")
}

func TestTokenStore_BlankTokenIsNoSession(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set("auth_token", "   \n"))

	store := NewTokenStore(storage)
	_, ok := store.Token()
	assert.False(t, ok)
}

func TestTokenStore_ClearIsIdempotent(t *testing.T) {
	store := NewTokenStore(NewMemoryStorage())
	require.NoError(t, store.Save("tok", UserInfo{ID: 1, Username: "u", Role: "student"}))

	require.NoError(t, store.Clear())
	_, ok := store.Token()
	assert.False(t, ok)

	// Second clear observes the identical state and still succeeds.
	require.NoError(t, store.Clear())
	_, ok = store.Token()
	assert.False(t, ok)
}

func TestFileStorage_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	storage := NewFileStorage(dir)

	require.NoError(t, storage.Set("auth_token", "tok-xyz"))

	v, ok, err := storage.Get("auth_token")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok-xyz", v)

	require.NoError(t, storage.Delete("auth_token"))
	_, ok, err = storage.Get("auth_token")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is a no-op.
	require.NoError(t, storage.Delete("auth_token"))
}
