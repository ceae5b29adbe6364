package cmd

import (
	"testing"

	"github.com/unijobs/unijobs/internal/auth"
	"github.com/unijobs/unijobs/internal/authz"
	uniErrors "github.com/unijobs/unijobs/internal/errors"
)

func testApp(t *testing.T, info *auth.UserInfo) *app {
	t.Helper()
	store := auth.NewTokenStore(auth.NewMemoryStorage())
	if info != nil {
		if err := store.Save("tok", *info); err != nil {
			t.Fatalf("save session: %v", err)
		}
	}
	session := auth.NewSessionState(store)
	return &app{
		store:   store,
		session: session,
		guard:   authz.NewGuard(session, "/login/", "/"),
	}
}

// TestRequireAuthRedirectsToLogin tests that guarded commands fail before any
// request when no session exists, carrying the login redirect.
func TestRequireAuthRedirectsToLogin(t *testing.T) {
	a := testApp(t, nil)

	err := a.requireAuth("/applications/")
	if err == nil {
		t.Fatal("expected an error without a session")
	}
	if uniErrors.CodeOf(err) != uniErrors.ErrCodeLoginRequired {
		t.Errorf("expected login-required code, got %s", uniErrors.CodeOf(err))
	}
	target, ok := uniErrors.RedirectOf(err)
	if !ok {
		t.Fatal("expected a redirect target")
	}
	if target != "/login/?next=%2Fapplications%2F" {
		t.Errorf("unexpected redirect target %q", target)
	}

	a = testApp(t, &auth.UserInfo{ID: 3, Username: "ivan", Role: "student"})
	if err := a.requireAuth("/applications/"); err != nil {
		t.Errorf("unexpected error with a session: %v", err)
	}
}

// TestRequireRoleBlocksWrongRole tests the employer re-guard used by the
// vacancy edit and delete paths, including the browser's intents.
func TestRequireRoleBlocksWrongRole(t *testing.T) {
	a := testApp(t, &auth.UserInfo{ID: 3, Username: "ivan", Role: "student"})

	err := a.requireRole(authz.RoleEmployer, "/vacancies/5/edit/")
	if err == nil {
		t.Fatal("expected an error for the wrong role")
	}
	if uniErrors.CodeOf(err) != uniErrors.ErrCodeWrongRole {
		t.Errorf("expected wrong-role code, got %s", uniErrors.CodeOf(err))
	}

	a = testApp(t, &auth.UserInfo{ID: 7, Username: "acme", Role: "employer"})
	if err := a.requireRole(authz.RoleEmployer, "/vacancies/5/edit/"); err != nil {
		t.Errorf("unexpected error for an employer: %v", err)
	}

	// Without a session the role guard still demands login first.
	a = testApp(t, nil)
	err = a.requireRole(authz.RoleEmployer, "/vacancies/5/edit/")
	if uniErrors.CodeOf(err) != uniErrors.ErrCodeLoginRequired {
		t.Errorf("expected login-required code, got %s", uniErrors.CodeOf(err))
	}
}
