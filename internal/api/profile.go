package api

import (
	"context"
)

// Me fetches the current account with its embedded role profile.
func (c *Client) Me(ctx context.Context) (*CurrentUser, error) {
	var out CurrentUser
	if err := c.get(ctx, "/me/", nil, &out, "profile"); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProfileUpdate is the role-dependent flat field map of the update-profile
// endpoint. Only the fields the role owns are read by the backend; nil
// pointers are omitted so unset fields keep their server values.
type ProfileUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`

	// Student fields
	Faculty   *string `json:"faculty,omitempty"`
	Course    *int    `json:"course,omitempty"`
	ResumeURL *string `json:"resume_url,omitempty"`
	SkillIDs  []int64 `json:"skills,omitempty"`

	// Employer fields
	CompanyName   *string `json:"company_name,omitempty"`
	Department    *string `json:"department,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Description   *string `json:"description,omitempty"`
}

// UpdateProfile submits profile changes for the current user's role.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) error {
	return c.post(ctx, "/update-profile/", update, nil, "profile")
}
