package auth

import (
	"encoding/json"
	"strings"
)

// Storage keys. The token is an opaque string; the user info record is a
// small JSON document saved next to it at login time.
const (
	tokenKey    = "auth_token"
	userInfoKey = "user_info"
)

// UserInfo is the identity record persisted alongside the token.
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// TokenStore wraps Storage with the two fixed session keys. Reads degrade to
// "no session" on any storage or parse failure so a corrupted value can never
// crash a screen.
type TokenStore struct {
	storage Storage
}

// NewTokenStore creates a token store over the given storage.
func NewTokenStore(storage Storage) *TokenStore {
	return &TokenStore{storage: storage}
}

// Token returns the stored bearer token. The bool is false when no usable
// token exists.
func (ts *TokenStore) Token() (string, bool) {
	v, ok, err := ts.storage.Get(tokenKey)
	if err != nil || !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}

// UserInfo returns the stored identity record. Malformed JSON reads as no
// record.
func (ts *TokenStore) UserInfo() (UserInfo, bool) {
	v, ok, err := ts.storage.Get(userInfoKey)
	if err != nil || !ok {
		return UserInfo{}, false
	}
	var info UserInfo
	if err := json.Unmarshal([]byte(v), &info); err != nil {
		return UserInfo{}, false
	}
	return info, true
}

// Save persists the token and identity record written by a successful login.
func (ts *TokenStore) Save(token string, info UserInfo) error {
	b, err := json.Marshal(info)
	if err != nil {
		return err
	}
	if err := ts.storage.Set(tokenKey, token); err != nil {
		return err
	}
	return ts.storage.Set(userInfoKey, string(b))
}

// Clear removes both session keys. Clearing an already-empty store is a
// no-op, so repeated logouts and 401 handlers can call it freely.
func (ts *TokenStore) Clear() error {
	if err := ts.storage.Delete(tokenKey); err != nil {
		return err
	}
	return ts.storage.Delete(userInfoKey)
}
