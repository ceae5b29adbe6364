package authz

import (
	"strings"
	"testing"
)

type fakeSession struct {
	authed bool
	role   Role
}

func (f fakeSession) IsAuthenticated() bool { return f.authed }
func (f fakeSession) Role() Role            { return f.role }

func TestGuard_RequireAuth(t *testing.T) {
	guard := NewGuard(fakeSession{}, "", "")

	redirect := guard.RequireAuth("/applications/")
	if redirect == nil {
		t.Fatal("expected a redirect for an unauthenticated session")
	}
	if redirect.Target != "/login/?next=%2Fapplications%2F" {
		t.Errorf("unexpected target %q", redirect.Target)
	}
}

func TestGuard_RequireAuthPasses(t *testing.T) {
	guard := NewGuard(fakeSession{authed: true, role: RoleStudent}, "", "")
	if redirect := guard.RequireAuth("/applications/"); redirect != nil {
		t.Errorf("expected nil redirect, got %+v", redirect)
	}
}

// requireRole(student) on an employer session must always redirect and never
// let the guarded content render.
func TestGuard_RequireRoleMismatch(t *testing.T) {
	guard := NewGuard(fakeSession{authed: true, role: RoleEmployer}, "", "")

	redirect := guard.RequireRole(RoleStudent, "/student-dashboard/")
	if redirect == nil {
		t.Fatal("expected a redirect for a role mismatch")
	}
	if redirect.Target != "/" {
		t.Errorf("role mismatch should go home, got %q", redirect.Target)
	}
	if !strings.Contains(redirect.Reason, "student") {
		t.Errorf("reason should name the required role, got %q", redirect.Reason)
	}
}

func TestGuard_RequireRoleUnauthenticated(t *testing.T) {
	guard := NewGuard(fakeSession{}, "", "")

	redirect := guard.RequireRole(RoleEmployer, "/employer-dashboard/")
	if redirect == nil {
		t.Fatal("expected a redirect")
	}
	if !strings.HasPrefix(redirect.Target, "/login/?next=") {
		t.Errorf("unauthenticated role check should go to login, got %q", redirect.Target)
	}
}

func TestGuard_RequireRoleMatch(t *testing.T) {
	guard := NewGuard(fakeSession{authed: true, role: RoleEmployer}, "", "")
	if redirect := guard.RequireRole(RoleEmployer, "/employer-dashboard/"); redirect != nil {
		t.Errorf("expected nil redirect, got %+v", redirect)
	}
}

// Guards are stateless: repeating a check yields the identical outcome.
func TestGuard_Idempotent(t *testing.T) {
	guard := NewGuard(fakeSession{}, "", "")
	first := guard.RequireAuth("/vacancy/")
	second := guard.RequireAuth("/vacancy/")
	if first == nil || second == nil || first.Target != second.Target {
		t.Errorf("repeated checks differ: %+v vs %+v", first, second)
	}
}

func TestLoginRedirect(t *testing.T) {
	if got := LoginRedirect("/login/", ""); got != "/login/" {
		t.Errorf("empty next should yield the bare login path, got %q", got)
	}
	if got := LoginRedirect("/login/", "/vacancy/?id=3"); got != "/login/?next=%2Fvacancy%2F%3Fid%3D3" {
		t.Errorf("unexpected encoded target %q", got)
	}
}
