package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/unijobs/unijobs/internal/authz"
)

// Backend records. Optional backend fields are pointers so "absent" and
// "zero" stay distinguishable; display defaults are applied in one place
// (the accessor methods below), not at call sites.

// User is the account record embedded in profiles.
type User struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// StudentProfile is the role profile for students.
type StudentProfile struct {
	ID        int64      `json:"id"`
	User      *User      `json:"user,omitempty"`
	Role      string     `json:"role,omitempty"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Faculty   string     `json:"faculty"`
	Course    int        `json:"course"`
	ResumeURL *string    `json:"resume_url,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Skills    []Skill    `json:"skills,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// EmployerProfile is the role profile for employers.
type EmployerProfile struct {
	ID            int64   `json:"id"`
	User          *User   `json:"user,omitempty"`
	Role          string  `json:"role,omitempty"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	CompanyName   string  `json:"company_name"`
	Department    string  `json:"department"`
	ContactPerson string  `json:"contact_person"`
	Phone         string  `json:"phone"`
	Description   *string `json:"description,omitempty"`
}

// Category is a vacancy category.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// Skill is a tag shared by vacancies and student profiles.
type Skill struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Vacancy types used by the backend.
const (
	VacancyTypeWork       = "work"
	VacancyTypeInternship = "internship"
)

// Vacancy is a job posting with its embedded employer.
type Vacancy struct {
	ID           int64            `json:"id"`
	Employer     *EmployerProfile `json:"employer,omitempty"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Requirements string           `json:"requirements"`
	VacancyType  string           `json:"vacancy_type"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	Location     string           `json:"location"`
	IsActive     bool             `json:"is_active"`
	Category     *Category        `json:"category,omitempty"`
	Skills       []Skill          `json:"skills,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// Owner returns the ownership record for role gating. List serializers may
// omit the employer or its user; the zero ResourceOwner never matches.
func (v *Vacancy) Owner() authz.ResourceOwner {
	if v.Employer == nil || v.Employer.User == nil {
		return authz.ResourceOwner{}
	}
	id := v.Employer.User.ID
	return authz.ResourceOwner{UserID: &id, Username: v.Employer.User.Username}
}

// CompanyName returns the employer company with the display default applied.
func (v *Vacancy) CompanyName() string {
	if v.Employer == nil || v.Employer.CompanyName == "" {
		return "Employer"
	}
	return v.Employer.CompanyName
}

// CategoryName returns the category with the display default applied.
func (v *Vacancy) CategoryName() string {
	if v.Category == nil || v.Category.Name == "" {
		return "Uncategorized"
	}
	return v.Category.Name
}

// Interview is the optional interview attached to an application.
type Interview struct {
	ID          int64                 `json:"id"`
	ScheduledAt time.Time             `json:"scheduled_at"`
	MeetingLink *string               `json:"meeting_link,omitempty"`
	Location    *string               `json:"location,omitempty"`
	Notes       *string               `json:"notes,omitempty"`
	Status      authz.InterviewStatus `json:"status"`
}

// Review is the optional review attached to an application.
type Review struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	FromRole  string    `json:"from_role"`
	CreatedAt time.Time `json:"created_at"`
}

// Application is a student's response to a vacancy.
type Application struct {
	ID          int64           `json:"id"`
	Student     *StudentProfile `json:"student,omitempty"`
	Vacancy     *Vacancy        `json:"vacancy,omitempty"`
	ResumeURL   string          `json:"resume_url"`
	CoverLetter string          `json:"cover_letter"`
	Status      string          `json:"status"`
	AppliedAt   time.Time       `json:"applied_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Interview   *Interview      `json:"interview,omitempty"`
	Review      *Review         `json:"review,omitempty"`
}

// ParsedStatus maps the raw status onto the closed enum; unknown values
// report false and render as-is without ever enabling a status transition.
func (a *Application) ParsedStatus() (authz.ApplicationStatus, bool) {
	return authz.ParseApplicationStatus(a.Status)
}

// StudentName returns the applicant's display name with defaults applied.
func (a *Application) StudentName() string {
	if a.Student == nil {
		return "Unknown applicant"
	}
	name := a.Student.FirstName
	if a.Student.LastName != "" {
		if name != "" {
			name += " "
		}
		name += a.Student.LastName
	}
	if name == "" && a.Student.User != nil {
		name = a.Student.User.Username
	}
	if name == "" {
		name = "Unknown applicant"
	}
	return name
}

// Notification types used by the backend.
const (
	NotificationApplicationUpdate = "application_update"
	NotificationNewVacancy        = "new_vacancy"
	NotificationSystem            = "system"
)

// Notification is a user notification.
type Notification struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	NotificationType string    `json:"notification_type"`
	IsRead           bool      `json:"is_read"`
	CreatedAt        time.Time `json:"created_at"`
}

// CurrentUser is the /me/ response: the account plus the role profile.
type CurrentUser struct {
	ID              int64            `json:"id"`
	Username        string           `json:"username"`
	Email           string           `json:"email"`
	Role            string           `json:"role"`
	StudentProfile  *StudentProfile  `json:"student_profile,omitempty"`
	EmployerProfile *EmployerProfile `json:"employer_profile,omitempty"`
}

// ParsedRole maps the /me/ role string onto the closed enum.
func (u *CurrentUser) ParsedRole() authz.Role {
	return authz.ParseRole(u.Role)
}
