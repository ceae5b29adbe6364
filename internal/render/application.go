package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/unijobs/unijobs/internal/api"
	"github.com/unijobs/unijobs/internal/authz"
)

// ratingStars renders a 1..5 rating as stars. The rating comes from the
// backend, so out-of-range values render as a plain number instead of being
// trusted.
func ratingStars(rating int) string {
	if rating < 0 || rating > 5 {
		return fmt.Sprintf("%d/5", rating)
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func (r *Renderer) statusBadge(status string) string {
	parsed, ok := authz.ParseApplicationStatus(status)
	if !ok {
		return r.styles.Muted.Render(status)
	}
	switch parsed {
	case authz.StatusAccepted:
		return r.styles.Success.Render("accepted")
	case authz.StatusRejected:
		return r.styles.Error.Render("rejected")
	case authz.StatusReviewed:
		return r.styles.Warning.Render("reviewed")
	default:
		return r.styles.Muted.Render("pending")
	}
}

// ApplicationRow renders one application as a list row. The vacancy title and
// the student name are best-effort: list serializers may omit either side.
func (r *Renderer) ApplicationRow(a *api.Application) string {
	title := "(vacancy removed)"
	if a.Vacancy != nil {
		title = a.Vacancy.Title
	}

	line := fmt.Sprintf("#%d %s  %s", a.ID, r.styles.Value.Render(title), r.statusBadge(a.Status))
	if a.Student != nil {
		line += r.styles.Muted.Render("  by " + a.StudentName())
	}
	if !a.AppliedAt.IsZero() {
		line += r.styles.Muted.Render("  " + humanize.Time(a.AppliedAt))
	}
	return line
}

// ApplicationList renders the caller's applications.
func (r *Renderer) ApplicationList(apps []api.Application) string {
	if len(apps) == 0 {
		return r.styles.Muted.Render("No applications yet.")
	}
	rows := make([]string, 0, len(apps))
	for i := range apps {
		rows = append(rows, r.ApplicationRow(&apps[i]))
	}
	return strings.Join(rows, "\n")
}

// ApplicationDetail renders the full application with its optional interview
// and review blocks.
func (r *Renderer) ApplicationDetail(a *api.Application) string {
	var b strings.Builder

	title := "(vacancy removed)"
	if a.Vacancy != nil {
		title = a.Vacancy.Title
	}
	b.WriteString(r.styles.Title.Render(fmt.Sprintf("Application #%d — %s", a.ID, title)))
	b.WriteString("\n")

	write := func(label, value string) {
		b.WriteString(r.styles.Label.Render(label+": ") + r.styles.Value.Render(value))
		b.WriteString("\n")
	}

	b.WriteString(r.styles.Label.Render("Status: ") + r.statusBadge(a.Status) + "\n")
	if a.Student != nil {
		write("Student", a.StudentName())
	}
	if a.ResumeURL != "" {
		write("Resume", a.ResumeURL)
	}
	if a.CoverLetter != "" {
		b.WriteString("\n" + a.CoverLetter + "\n")
	}

	if iv := a.Interview; iv != nil {
		b.WriteString("\n" + r.styles.Label.Render("Interview") + "\n")
		write("When", iv.ScheduledAt.Format("Mon, 02 Jan 2006 15:04"))
		write("Status", string(iv.Status))
		if iv.MeetingLink != nil && *iv.MeetingLink != "" {
			write("Link", *iv.MeetingLink)
		}
		if iv.Location != nil && *iv.Location != "" {
			write("Where", *iv.Location)
		}
	}

	if rv := a.Review; rv != nil {
		b.WriteString("\n" + r.styles.Label.Render("Review") + "\n")
		write("Rating", ratingStars(rv.Rating))
		if rv.Comment != nil && *rv.Comment != "" {
			b.WriteString(*rv.Comment + "\n")
		}
	}

	return b.String()
}
