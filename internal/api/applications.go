package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/unijobs/unijobs/internal/authz"
)

// Applications fetches the caller's applications: a student sees their own,
// an employer sees applications to their vacancies. A non-zero vacancyID
// restricts the list to one vacancy.
func (c *Client) Applications(ctx context.Context, vacancyID int64) ([]Application, error) {
	var q url.Values
	if vacancyID != 0 {
		q = url.Values{"vacancy": []string{strconv.FormatInt(vacancyID, 10)}}
	}
	var out []Application
	if err := c.get(ctx, "/applications/", q, &out, "applications"); err != nil {
		return nil, err
	}
	return out, nil
}

// Application fetches a single application by id.
func (c *Client) Application(ctx context.Context, id int64) (*Application, error) {
	var out Application
	if err := c.get(ctx, fmt.Sprintf("/applications/%d/", id), nil, &out, "application"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateApplicationStatus moves an application through its lifecycle.
// The status comes from the closed enum, so an unrecognized server value
// read earlier can never be written back.
func (c *Client) UpdateApplicationStatus(ctx context.Context, id int64, status authz.ApplicationStatus) (*Application, error) {
	body := map[string]string{"status": status.String()}
	var out Application
	if err := c.patch(ctx, fmt.Sprintf("/applications/%d/update_status/", id), body, &out, "application"); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReviewDraft is the body of a review on a completed application.
type ReviewDraft struct {
	Rating   int    `json:"rating"`
	Comment  string `json:"comment,omitempty"`
	FromRole string `json:"from_role"`
}

// AddReview attaches a review to an application.
func (c *Client) AddReview(ctx context.Context, applicationID int64, draft ReviewDraft) (*Review, error) {
	var out Review
	if err := c.post(ctx, fmt.Sprintf("/applications/%d/add_review/", applicationID), draft, &out, "application"); err != nil {
		return nil, err
	}
	return &out, nil
}
