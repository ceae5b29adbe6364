package tui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/unijobs/unijobs/internal/api"
)

// LoginForm collects credentials. Both fields are required; the password
// field is masked.
func LoginForm(username, password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("username").
				Title("Username").
				Value(username).
				Validate(requireNonEmpty("username")),
			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(requireNonEmpty("password")),
		),
	)
}

// ApplyForm collects an application draft. The resume URL must parse as an
// absolute http(s) URL before it is sent anywhere.
func ApplyForm(draft *api.ApplicationDraft) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("resume_url").
				Title("Resume URL").
				Description("A link to your resume (Google Drive, personal site, ...)").
				Value(&draft.ResumeURL).
				Validate(validateHTTPURL),
			huh.NewText().
				Key("cover_letter").
				Title("Cover letter").
				Description("Tell the employer why you are a good fit").
				Value(&draft.CoverLetter).
				Validate(requireNonEmpty("cover letter")),
		),
	)
}

// VacancyForm collects a vacancy draft for create and edit. Categories and
// skills come from the taxonomy endpoints; salary is optional and parsed as
// a decimal.
func VacancyForm(draft *api.VacancyDraft, salary *string, categoryID *int64, categories []api.Category, skills []api.Skill) *huh.Form {
	typeOptions := []huh.Option[string]{
		huh.NewOption("Job", api.VacancyTypeWork),
		huh.NewOption("Internship", api.VacancyTypeInternship),
	}

	categoryOptions := make([]huh.Option[int64], 0, len(categories)+1)
	categoryOptions = append(categoryOptions, huh.NewOption[int64]("(none)", 0))
	for _, c := range categories {
		categoryOptions = append(categoryOptions, huh.NewOption(c.Name, c.ID))
	}
	if draft.CategoryID != nil {
		*categoryID = *draft.CategoryID
	}

	skillOptions := make([]huh.Option[int64], 0, len(skills))
	for _, s := range skills {
		skillOptions = append(skillOptions, huh.NewOption(s.Name, s.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Value(&draft.Title).
				Validate(requireNonEmpty("title")),
			huh.NewSelect[string]().
				Key("vacancy_type").
				Title("Type").
				Options(typeOptions...).
				Value(&draft.VacancyType),
			huh.NewInput().
				Key("location").
				Title("Location").
				Value(&draft.Location).
				Validate(requireNonEmpty("location")),
			huh.NewInput().
				Key("salary").
				Title("Salary").
				Description("Monthly, in rubles; leave empty for negotiable").
				Value(salary).
				Validate(validateOptionalDecimal),
		),
		huh.NewGroup(
			huh.NewText().
				Key("description").
				Title("Description").
				Value(&draft.Description).
				Validate(requireNonEmpty("description")),
			huh.NewText().
				Key("requirements").
				Title("Requirements").
				Value(&draft.Requirements),
		),
		huh.NewGroup(
			huh.NewSelect[int64]().
				Key("category").
				Title("Category").
				Options(categoryOptions...).
				Value(categoryID),
			huh.NewMultiSelect[int64]().
				Key("skills").
				Title("Skills").
				Options(skillOptions...).
				Value(&draft.SkillIDs),
			huh.NewConfirm().
				Key("is_active").
				Title("Active").
				Value(&draft.IsActive),
		),
	)

	return form
}

// DraftCategory moves the selected category back into the draft; the zero
// option means "no category".
func DraftCategory(draft *api.VacancyDraft, categoryID int64) {
	if categoryID == 0 {
		draft.CategoryID = nil
		return
	}
	draft.CategoryID = &categoryID
}

// ApplyDraftSalary moves the collected salary string into the draft after a
// successful form run.
func ApplyDraftSalary(draft *api.VacancyDraft, salary string) error {
	salary = strings.TrimSpace(salary)
	if salary == "" {
		draft.Salary = nil
		return nil
	}
	d, err := decimal.NewFromString(salary)
	if err != nil {
		return fmt.Errorf("salary must be a number: %w", err)
	}
	draft.Salary = &d
	return nil
}

// ConfirmForm asks a yes/no question, defaulting to no.
func ConfirmForm(title string, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(confirmed),
		),
	)
}

func requireNonEmpty(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validateHTTPURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("resume URL is required")
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("must be a full http(s) URL")
	}
	return nil
}

func validateOptionalDecimal(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := decimal.NewFromString(s); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}
