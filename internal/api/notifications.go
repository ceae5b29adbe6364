package api

import (
	"context"
	"fmt"
)

// Notifications fetches the caller's notifications, newest first.
func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	var out []Notification
	if err := c.get(ctx, "/notifications/", nil, &out, "notifications"); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/notifications/%d/mark_as_read/", id), nil, nil, "notification")
}

// MarkAllNotificationsRead marks every unread notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.post(ctx, "/notifications/mark_all_as_read/", nil, nil, "notifications")
}

// UnreadCount returns the number of unread notifications for the badge.
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := c.get(ctx, "/notifications/unread_count/", nil, &out, "notifications"); err != nil {
		return 0, err
	}
	return out.Count, nil
}
