package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// VacancyFilter is the query surface of the vacancy list endpoint. Zero
// values mean "not filtered".
type VacancyFilter struct {
	Search     string
	Type       string
	CategoryID int64
	WithSalary bool
	IsActive   *bool

	// All includes inactive vacancies; My restricts to the caller's own.
	// Both are employer-dashboard filters.
	All bool
	My  bool
}

func (f VacancyFilter) query() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.CategoryID != 0 {
		q.Set("category", strconv.FormatInt(f.CategoryID, 10))
	}
	if f.WithSalary {
		q.Set("with_salary", "true")
	}
	if f.IsActive != nil {
		q.Set("is_active", strconv.FormatBool(*f.IsActive))
	}
	if f.All {
		q.Set("all", "true")
	}
	if f.My {
		q.Set("my", "true")
	}
	return q
}

// Vacancies fetches the vacancy list with the given filters.
func (c *Client) Vacancies(ctx context.Context, filter VacancyFilter) ([]Vacancy, error) {
	var out []Vacancy
	if err := c.get(ctx, "/vacancies/", filter.query(), &out, "vacancies"); err != nil {
		return nil, err
	}
	return out, nil
}

// Vacancy fetches a single vacancy by id.
func (c *Client) Vacancy(ctx context.Context, id int64) (*Vacancy, error) {
	var out Vacancy
	if err := c.get(ctx, fmt.Sprintf("/vacancies/%d/", id), nil, &out, "vacancy"); err != nil {
		return nil, err
	}
	return &out, nil
}

// VacancyDraft is the write shape for creating and editing vacancies.
type VacancyDraft struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Requirements string           `json:"requirements"`
	VacancyType  string           `json:"vacancy_type"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	Location     string           `json:"location"`
	IsActive     bool             `json:"is_active"`
	CategoryID   *int64           `json:"category,omitempty"`
	SkillIDs     []int64          `json:"skills,omitempty"`
}

// CreateVacancy posts a new vacancy. Employer only; the backend enforces it.
func (c *Client) CreateVacancy(ctx context.Context, draft VacancyDraft) (*Vacancy, error) {
	var out Vacancy
	if err := c.post(ctx, "/vacancies/", draft, &out, "vacancy"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateVacancy replaces an existing vacancy. Owner only.
func (c *Client) UpdateVacancy(ctx context.Context, id int64, draft VacancyDraft) (*Vacancy, error) {
	var out Vacancy
	if err := c.put(ctx, fmt.Sprintf("/vacancies/%d/", id), draft, &out, "vacancy"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteVacancy removes a vacancy. Owner only.
func (c *Client) DeleteVacancy(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/vacancies/%d/", id), "vacancy")
}

// ApplicationDraft is the body of a vacancy application.
type ApplicationDraft struct {
	ResumeURL   string `json:"resume_url"`
	CoverLetter string `json:"cover_letter"`
}

// Apply submits an application to a vacancy. The caller is responsible for
// gating: this must only be reached when the role decision offers Apply.
func (c *Client) Apply(ctx context.Context, vacancyID int64, draft ApplicationDraft) (*Application, error) {
	var out Application
	if err := c.post(ctx, fmt.Sprintf("/vacancies/%d/apply/", vacancyID), draft, &out, "vacancy"); err != nil {
		return nil, err
	}
	return &out, nil
}
