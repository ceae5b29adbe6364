package render

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/unijobs/unijobs/internal/api"
	"github.com/unijobs/unijobs/internal/authz"
	uniErrors "github.com/unijobs/unijobs/internal/errors"
)

func sampleVacancy() *api.Vacancy {
	salary := decimal.NewFromInt(90000)
	return &api.Vacancy{
		ID:          5,
		Title:       "Go developer",
		VacancyType: api.VacancyTypeWork,
		Salary:      &salary,
		Location:    "Moscow",
		IsActive:    true,
		CreatedAt:   time.Now().Add(-48 * time.Hour),
		Employer: &api.EmployerProfile{
			CompanyName: "Acme",
			User:        &api.User{ID: 7, Username: "acme"},
		},
	}
}

func TestVacancyDetail_VisitorSeesLoginPromptOnly(t *testing.T) {
	r := NewRenderer()
	d := authz.Decide(authz.Subject{}, authz.ContextVacancyDetail)

	out := r.VacancyDetail(sampleVacancy(), d)

	assert.Contains(t, out, "Login to apply")
	assert.NotContains(t, out, "Edit vacancy")
	assert.NotContains(t, out, "Delete vacancy")
	// "Login to apply" contains "apply"; the mutating affordance is the
	// bracketed primary-action form.
	assert.NotContains(t, out, "[Apply]")
}

func TestVacancyDetail_StudentSeesApply(t *testing.T) {
	r := NewRenderer()
	d := authz.Decide(authz.Subject{Authenticated: true, Role: authz.RoleStudent}, authz.ContextVacancyDetail)

	out := r.VacancyDetail(sampleVacancy(), d)

	assert.Contains(t, out, "[Apply]")
	assert.NotContains(t, out, "Login to apply")
	assert.NotContains(t, out, "Edit vacancy")
}

func TestVacancyDetail_OwnerSeesEditNotApply(t *testing.T) {
	r := NewRenderer()
	d := authz.Decide(authz.Subject{Authenticated: true, Role: authz.RoleEmployer, Owner: true}, authz.ContextVacancyDetail)

	out := r.VacancyDetail(sampleVacancy(), d)

	assert.Contains(t, out, "Edit vacancy")
	assert.NotContains(t, out, "[Apply]")
}

func TestVacancyDetail_ForeignEmployerSeesNote(t *testing.T) {
	r := NewRenderer()
	d := authz.Decide(authz.Subject{Authenticated: true, Role: authz.RoleEmployer}, authz.ContextVacancyDetail)

	out := r.VacancyDetail(sampleVacancy(), d)

	assert.Contains(t, out, "Only students can apply")
	assert.NotContains(t, out, "Edit vacancy")
	assert.NotContains(t, out, "[Apply]")
}

func TestVacancyDetail_SalaryAndInactive(t *testing.T) {
	r := NewRenderer()
	d := authz.Decide(authz.Subject{}, authz.ContextVacancyDetail)

	v := sampleVacancy()
	out := r.VacancyDetail(v, d)
	assert.Contains(t, out, "90,000")

	v.Salary = nil
	v.IsActive = false
	out = r.VacancyDetail(v, d)
	assert.Contains(t, out, "Salary negotiable")
	assert.Contains(t, out, "no longer active")
}

func TestVacancyList_RowControlsFollowOwnership(t *testing.T) {
	r := NewRenderer()
	own := *sampleVacancy()
	foreign := *sampleVacancy()
	foreign.ID = 6
	foreign.Title = "Python developer"
	foreign.Employer = &api.EmployerProfile{
		CompanyName: "Other",
		User:        &api.User{ID: 8, Username: "other"},
	}

	// Employer user 7 browsing: only their own row gets edit/delete.
	out := r.VacancyList([]api.Vacancy{own, foreign}, func(v *api.Vacancy) authz.Decision {
		owner := v.Owner()
		return authz.Decide(authz.Subject{
			Authenticated: true,
			Role:          authz.RoleEmployer,
			Owner:         owner.Owns(7, true, "acme"),
		}, authz.ContextVacancyRow)
	})

	ownPart, foreignPart, found := strings.Cut(out, "Python developer")
	assert.True(t, found)
	assert.Contains(t, ownPart, "Delete vacancy")
	assert.NotContains(t, foreignPart, "Delete vacancy")
}

func TestNavbar_PermissiveForUnknownRole(t *testing.T) {
	r := NewRenderer()
	d := authz.Decide(authz.Subject{Authenticated: true, Role: authz.RoleUnknown}, authz.ContextNavigation)

	out := r.Navbar(d)
	assert.Contains(t, out, "Logout")
	assert.Contains(t, out, "Applications")
}

func TestNoticeFromError_ValidationListsEveryField(t *testing.T) {
	r := NewRenderer()
	err := uniErrors.NewValidationError(map[string][]string{
		"resume_url":   {"Enter a valid URL."},
		"cover_letter": {"This field may not be blank."},
	})

	out := r.Notice(NoticeFromError(err))
	assert.Contains(t, out, "resume_url")
	assert.Contains(t, out, "Enter a valid URL.")
	assert.Contains(t, out, "cover_letter")
	assert.Contains(t, out, "This field may not be blank.")
}

func TestNoticeFromError_NetworkIsWarning(t *testing.T) {
	n := NoticeFromError(uniErrors.NewNetworkError(assert.AnError))
	assert.Equal(t, NoticeWarning, n.Level)
	assert.NotEmpty(t, n.Suggestions)
}

func TestApplicationDetail_ReviewRatingOutOfRange(t *testing.T) {
	r := NewRenderer()
	comment := "great"
	app := &api.Application{
		ID:     1,
		Status: "accepted",
		Review: &api.Review{Rating: 6, Comment: &comment},
	}

	// A backend rating outside 1..5 must render, not crash the screen.
	out := r.ApplicationDetail(app)
	assert.Contains(t, out, "6/5")

	app.Review.Rating = -1
	out = r.ApplicationDetail(app)
	assert.Contains(t, out, "-1/5")

	app.Review.Rating = 3
	out = r.ApplicationDetail(app)
	assert.Contains(t, out, "★★★☆☆")
}

func TestApplicationList_StatusBadges(t *testing.T) {
	r := NewRenderer()
	apps := []api.Application{
		{ID: 1, Status: "accepted", Vacancy: &api.Vacancy{Title: "Go developer"}},
		{ID: 2, Status: "weird_status"},
	}

	out := r.ApplicationList(apps)
	assert.Contains(t, out, "accepted")
	assert.Contains(t, out, "(vacancy removed)")
	// Unknown statuses render verbatim instead of being dropped.
	assert.Contains(t, out, "weird_status")
}
