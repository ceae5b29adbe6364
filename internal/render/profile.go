package render

import (
	"fmt"
	"strings"

	"github.com/unijobs/unijobs/internal/api"
	"github.com/unijobs/unijobs/internal/authz"
)

// Navbar renders the navigation line for the current decision. Links follow
// the permissive rule: a role the client does not recognize keeps every link.
func (r *Renderer) Navbar(d authz.Decision) string {
	parts := make([]string, 0, len(d.Visible))
	for _, a := range d.Visible {
		if label := ActionLabel(a); label != "" {
			parts = append(parts, label)
		}
	}
	return r.styles.Subtitle.Render(strings.Join(parts, " · "))
}

// Profile renders the /me/ screen for whichever role profile is present.
func (r *Renderer) Profile(u *api.CurrentUser) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(u.Username))
	b.WriteString("\n")

	write := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(r.styles.Label.Render(label+": ") + r.styles.Value.Render(value))
		b.WriteString("\n")
	}

	write("Email", u.Email)
	write("Role", string(u.ParsedRole()))

	if sp := u.StudentProfile; sp != nil {
		write("Name", strings.TrimSpace(sp.FirstName+" "+sp.LastName))
		write("Faculty", sp.Faculty)
		if sp.Course > 0 {
			write("Course", fmt.Sprintf("%d", sp.Course))
		}
		if sp.ResumeURL != nil {
			write("Resume", *sp.ResumeURL)
		}
		if len(sp.Skills) > 0 {
			names := make([]string, 0, len(sp.Skills))
			for _, s := range sp.Skills {
				names = append(names, s.Name)
			}
			write("Skills", strings.Join(names, ", "))
		}
	}

	if ep := u.EmployerProfile; ep != nil {
		write("Company", ep.CompanyName)
		write("Department", ep.Department)
		write("Contact", ep.ContactPerson)
		write("Phone", ep.Phone)
		if ep.Description != nil {
			write("About", *ep.Description)
		}
	}

	return b.String()
}
