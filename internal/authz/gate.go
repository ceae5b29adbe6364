package authz

// Action identifies a UI affordance a screen may render.
type Action string

const (
	// Navigation bar links
	ActionNavLogin             Action = "nav:login"
	ActionNavLogout            Action = "nav:logout"
	ActionNavStudentDashboard  Action = "nav:student-dashboard"
	ActionNavEmployerDashboard Action = "nav:employer-dashboard"
	ActionNavApplications      Action = "nav:applications"

	// Vacancy detail affordances
	ActionApply        Action = "vacancy:apply"
	ActionLoginToApply Action = "vacancy:login-to-apply"
	ActionEditVacancy  Action = "vacancy:edit"

	// Disabled notes rendered in place of an action button
	ActionStudentsOnlyNote Action = "note:students-only"
	ActionUnavailableNote  Action = "note:unavailable"

	// Vacancy list row controls (owner only)
	ActionDeleteVacancy Action = "vacancy:delete"
)

// ScreenContext names a place in the UI that asks for a gating decision.
type ScreenContext string

const (
	ContextNavigation    ScreenContext = "navigation"
	ContextVacancyDetail ScreenContext = "vacancy-detail"
	ContextVacancyRow    ScreenContext = "vacancy-row"
)

// Subject is the session snapshot a decision is computed from. Owner is only
// consulted when Role is RoleEmployer; for every other role it is ignored so
// missing owner data can never influence a decision.
type Subject struct {
	Authenticated bool
	Role          Role
	Owner         bool
}

// Decision is the computed set of UI actions for a subject in a context.
// It is a pure value: recomputed on every render, never cached or mutated.
type Decision struct {
	Visible []Action
	Primary Action
}

// Allows reports whether the action is part of the decision.
func (d Decision) Allows(a Action) bool {
	for _, v := range d.Visible {
		if v == a {
			return true
		}
	}
	return false
}

// Decide maps (authenticated, role, owner, context) to the action set.
//
// Unknown or missing roles are permissive in navigation (an admin whose role
// the client does not recognize keeps all links) but restrictive everywhere a
// mutating action could be offered.
func Decide(s Subject, ctx ScreenContext) Decision {
	switch ctx {
	case ContextNavigation:
		return decideNavigation(s)
	case ContextVacancyDetail:
		return decideVacancyDetail(s)
	case ContextVacancyRow:
		return decideVacancyRow(s)
	default:
		return Decision{}
	}
}

func decideNavigation(s Subject) Decision {
	if !s.Authenticated {
		return Decision{
			Visible: []Action{ActionNavLogin},
			Primary: ActionNavLogin,
		}
	}

	switch s.Role {
	case RoleStudent:
		return Decision{Visible: []Action{ActionNavStudentDashboard, ActionNavLogout}}
	case RoleEmployer:
		return Decision{Visible: []Action{ActionNavEmployerDashboard, ActionNavApplications, ActionNavLogout}}
	default:
		// Admin and unknown roles keep every link.
		return Decision{Visible: []Action{
			ActionNavStudentDashboard,
			ActionNavEmployerDashboard,
			ActionNavApplications,
			ActionNavLogout,
		}}
	}
}

func decideVacancyDetail(s Subject) Decision {
	if !s.Authenticated {
		return Decision{
			Visible: []Action{ActionLoginToApply},
			Primary: ActionLoginToApply,
		}
	}

	switch s.Role {
	case RoleStudent:
		return Decision{
			Visible: []Action{ActionApply},
			Primary: ActionApply,
		}
	case RoleEmployer:
		if s.Owner {
			return Decision{
				Visible: []Action{ActionEditVacancy},
				Primary: ActionEditVacancy,
			}
		}
		return Decision{Visible: []Action{ActionStudentsOnlyNote}}
	default:
		return Decision{Visible: []Action{ActionUnavailableNote}}
	}
}

func decideVacancyRow(s Subject) Decision {
	if s.Authenticated && s.Role == RoleEmployer && s.Owner {
		return Decision{Visible: []Action{ActionEditVacancy, ActionDeleteVacancy}}
	}
	return Decision{}
}

// ResourceOwner identifies the creator of a vacancy or application as the
// backend reports it. Fields are optional because list serializers omit them.
type ResourceOwner struct {
	UserID   *int64
	Username string
}

// Owns derives resource ownership for an employer session: user id equality
// first, username equality as the fallback. Missing owner data is never an
// ownership match.
func (o ResourceOwner) Owns(userID int64, hasUserID bool, username string) bool {
	if o.UserID != nil && hasUserID && *o.UserID == userID {
		return true
	}
	if o.Username != "" && username != "" && o.Username == username {
		return true
	}
	return false
}
