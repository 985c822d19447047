package marketplace

import (
	"context"
	"fmt"
	"net/http"

	"talentlink/internal/models"
)

// ListNotifications fetches the full notification list; unread filtering by
// identity happens client-side.
func (c *Client) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := c.do(ctx, http.MethodGet, "/api/notifications/", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead flips is_read on the marketplace copy.
func (c *Client) MarkNotificationRead(ctx context.Context, id int) error {
	body := map[string]bool{"is_read": true}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/notifications/%d/", id), body, nil)
}
