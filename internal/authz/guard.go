package authz

import (
	"fmt"
	"net/url"
)

// SessionReader is the view of session state the guards need. The concrete
// implementation re-reads persistent storage on every call.
type SessionReader interface {
	IsAuthenticated() bool
	Role() Role
}

// Redirect is the navigation side effect a failed guard demands. The caller
// must navigate to Target and stop all rendering work for the current screen.
type Redirect struct {
	Target string

	// Reason is a short notice to show after navigating, when there is one.
	Reason string
}

// Guard enforces "this screen requires X" checks before any rendering begins.
// Each check is stateless and idempotent.
type Guard struct {
	session   SessionReader
	loginPath string
	homePath  string
}

// NewGuard builds a guard over the given session state. Empty paths fall back
// to the site defaults.
func NewGuard(session SessionReader, loginPath, homePath string) *Guard {
	if loginPath == "" {
		loginPath = "/login/"
	}
	if homePath == "" {
		homePath = "/"
	}
	return &Guard{session: session, loginPath: loginPath, homePath: homePath}
}

// RequireAuth returns a redirect to the login screen when no session exists,
// carrying the current path so login can return to it. Nil means proceed.
func (g *Guard) RequireAuth(current string) *Redirect {
	if g.session.IsAuthenticated() {
		return nil
	}
	return &Redirect{Target: LoginRedirect(g.loginPath, current)}
}

// RequireRole returns a redirect when the session's role does not match.
// An absent session redirects to login; a present session with the wrong role
// goes home with an explanatory notice, exactly once and without rendering
// any of the guarded content.
func (g *Guard) RequireRole(expected Role, current string) *Redirect {
	if !g.session.IsAuthenticated() {
		return &Redirect{Target: LoginRedirect(g.loginPath, current)}
	}
	if g.session.Role() != expected {
		return &Redirect{
			Target: g.homePath,
			Reason: fmt.Sprintf("this page is only available to %ss", expected),
		}
	}
	return nil
}

// LoginRedirect builds the login target with the return-to parameter.
func LoginRedirect(loginPath, next string) string {
	if next == "" {
		return loginPath
	}
	return loginPath + "?next=" + url.QueryEscape(next)
}
