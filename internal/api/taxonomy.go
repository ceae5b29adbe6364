package api

import "context"

// Categories fetches the vacancy categories for filters and forms.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := c.get(ctx, "/categories/", nil, &out, "categories"); err != nil {
		return nil, err
	}
	return out, nil
}

// Skills fetches the skill taxonomy for filters and profile editing.
func (c *Client) Skills(ctx context.Context) ([]Skill, error) {
	var out []Skill
	if err := c.get(ctx, "/skills/", nil, &out, "skills"); err != nil {
		return nil, err
	}
	return out, nil
}
