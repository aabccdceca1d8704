package api

import (
	"context"
	"fmt"
)

// Notifications fetches the current notification feed
func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	var resp struct {
		Notifications []Notification `json:"notifications"`
	}
	if err := c.get(ctx, "/notifications", &resp); err != nil {
		return nil, err
	}
	return resp.Notifications, nil
}

// MarkNotificationRead marks a single notification as read on the server
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.post(ctx, fmt.Sprintf("/notifications/read/%s", id), nil, nil)
}
