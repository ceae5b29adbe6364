package render

import (
	"github.com/unijobs/unijobs/internal/authz"
)

// Renderer turns fetched records and gating decisions into terminal text.
// It never decides visibility itself: every role-dependent element is driven
// by a Decision computed in the authz package.
type Renderer struct {
	styles Styles
}

// NewRenderer creates a renderer with the default styles.
func NewRenderer() *Renderer {
	return &Renderer{styles: DefaultStyles()}
}

// ActionLabel returns the user-facing label for a gated action.
func ActionLabel(a authz.Action) string {
	switch a {
	case authz.ActionNavLogin:
		return "Login"
	case authz.ActionNavLogout:
		return "Logout"
	case authz.ActionNavStudentDashboard:
		return "My dashboard"
	case authz.ActionNavEmployerDashboard:
		return "Employer dashboard"
	case authz.ActionNavApplications:
		return "Applications"
	case authz.ActionApply:
		return "Apply"
	case authz.ActionLoginToApply:
		return "Login to apply"
	case authz.ActionEditVacancy:
		return "Edit vacancy"
	case authz.ActionDeleteVacancy:
		return "Delete vacancy"
	case authz.ActionStudentsOnlyNote:
		return "Only students can apply to vacancies"
	case authz.ActionUnavailableNote:
		return "Applying is not available for your account"
	default:
		return ""
	}
}

// actionLine renders the visible actions of a decision on one line, primary
// action first.
func (r *Renderer) actionLine(d authz.Decision) string {
	parts := make([]string, 0, len(d.Visible))
	for _, a := range d.Visible {
		label := ActionLabel(a)
		if label == "" {
			continue
		}
		switch a {
		case authz.ActionStudentsOnlyNote, authz.ActionUnavailableNote:
			parts = append(parts, r.styles.Muted.Render(label))
		case d.Primary:
			parts = append(parts, r.styles.Action.Render("["+label+"]"))
		default:
			parts = append(parts, r.styles.Subtitle.Render(label))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += "  " + p
	}
	return out
}
