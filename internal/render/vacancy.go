package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/unijobs/unijobs/internal/api"
	"github.com/unijobs/unijobs/internal/authz"
)

// Salary renders the salary with thousands separators, or the negotiable
// default when the posting has none.
func Salary(v *api.Vacancy) string {
	if v.Salary == nil {
		return "Salary negotiable"
	}
	return humanize.Commaf(v.Salary.InexactFloat64()) + " ₽"
}

func vacancyTypeLabel(t string) string {
	switch t {
	case api.VacancyTypeInternship:
		return "Internship"
	case api.VacancyTypeWork:
		return "Job"
	default:
		return t
	}
}

// VacancyRow renders one vacancy as a list row. Owner controls appear only
// when the decision grants them.
func (r *Renderer) VacancyRow(v *api.Vacancy, d authz.Decision) string {
	var b strings.Builder

	b.WriteString(r.styles.Value.Render(v.Title))
	b.WriteString("  ")
	b.WriteString(r.styles.Badge.Render(vacancyTypeLabel(v.VacancyType)))
	if !v.IsActive {
		b.WriteString("  ")
		b.WriteString(r.styles.Warning.Render("inactive"))
	}
	b.WriteString("\n")

	b.WriteString(r.styles.Muted.Render(fmt.Sprintf("  %s · %s · %s · %s",
		v.CompanyName(), v.CategoryName(), v.Location, Salary(v))))

	if line := r.actionLine(d); line != "" {
		b.WriteString("\n  ")
		b.WriteString(line)
	}

	return b.String()
}

// VacancyList renders a page of vacancies. Each row gets its own decision
// because ownership varies per row.
func (r *Renderer) VacancyList(vacancies []api.Vacancy, decide func(v *api.Vacancy) authz.Decision) string {
	if len(vacancies) == 0 {
		return r.styles.Muted.Render("No vacancies found.")
	}

	rows := make([]string, 0, len(vacancies))
	for i := range vacancies {
		v := &vacancies[i]
		rows = append(rows, fmt.Sprintf("#%d %s", v.ID, r.VacancyRow(v, decide(v))))
	}
	return strings.Join(rows, "\n\n")
}

// VacancyDetail renders the full vacancy screen. The action block at the
// bottom is decision-driven: apply for students, edit for the owner, a login
// prompt for visitors, a note for everyone else.
func (r *Renderer) VacancyDetail(v *api.Vacancy, d authz.Decision) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(v.Title))
	b.WriteString("\n")

	write := func(label, value string) {
		b.WriteString(r.styles.Label.Render(label+": ") + r.styles.Value.Render(value))
		b.WriteString("\n")
	}

	write("Company", v.CompanyName())
	write("Type", vacancyTypeLabel(v.VacancyType))
	write("Category", v.CategoryName())
	write("Location", v.Location)
	write("Salary", Salary(v))
	if !v.CreatedAt.IsZero() {
		write("Posted", humanize.Time(v.CreatedAt))
	}
	if !v.IsActive {
		b.WriteString(r.styles.Warning.Render("This vacancy is no longer active."))
		b.WriteString("\n")
	}

	if len(v.Skills) > 0 {
		names := make([]string, 0, len(v.Skills))
		for _, s := range v.Skills {
			names = append(names, s.Name)
		}
		write("Skills", strings.Join(names, ", "))
	}

	if v.Description != "" {
		b.WriteString("\n" + v.Description + "\n")
	}
	if v.Requirements != "" {
		b.WriteString("\n" + r.styles.Label.Render("Requirements") + "\n" + v.Requirements + "\n")
	}

	if line := r.actionLine(d); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
