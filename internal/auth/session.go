package auth

import (
	"github.com/unijobs/unijobs/internal/authz"
)

// SessionState derives authentication facts from the token store. Every call
// re-reads storage rather than caching, so concurrent tabs or processes that
// log in or out are observed immediately. All reads default to
// unauthenticated/unknown on missing or malformed data and never fail.
type SessionState struct {
	store *TokenStore
}

// NewSessionState creates session state over the given token store.
func NewSessionState(store *TokenStore) *SessionState {
	return &SessionState{store: store}
}

// IsAuthenticated reports whether a token is present. Token presence is the
// definition of "authenticated" on the client; validity is only learned from
// the backend's 401s.
func (s *SessionState) IsAuthenticated() bool {
	_, ok := s.store.Token()
	return ok
}

// Role returns the stored role. Without a token the role is meaningless and
// reads as unknown, whatever the user-info record says.
func (s *SessionState) Role() authz.Role {
	if !s.IsAuthenticated() {
		return authz.RoleUnknown
	}
	info, ok := s.store.UserInfo()
	if !ok {
		return authz.RoleUnknown
	}
	return authz.ParseRole(info.Role)
}

// Username returns the stored username, if any.
func (s *SessionState) Username() (string, bool) {
	info, ok := s.store.UserInfo()
	if !ok || info.Username == "" {
		return "", false
	}
	return info.Username, true
}

// UserID returns the stored user id, if any.
func (s *SessionState) UserID() (int64, bool) {
	info, ok := s.store.UserInfo()
	if !ok || info.ID == 0 {
		return 0, false
	}
	return info.ID, true
}

// IsOwner reports whether the session owns the given resource. Ownership is
// an employer concept; for every other role the owner data is not even
// examined, so absent owner records cannot cause a failure.
func (s *SessionState) IsOwner(owner authz.ResourceOwner) bool {
	if s.Role() != authz.RoleEmployer {
		return false
	}
	id, hasID := s.UserID()
	name, _ := s.Username()
	return owner.Owns(id, hasID, name)
}

// Subject builds the gating snapshot for a screen. Pass a nil owner for
// contexts without a resource.
func (s *SessionState) Subject(owner *authz.ResourceOwner) authz.Subject {
	subject := authz.Subject{
		Authenticated: s.IsAuthenticated(),
		Role:          s.Role(),
	}
	if owner != nil {
		subject.Owner = s.IsOwner(*owner)
	}
	return subject
}
