package dto

import "talentlink/internal/models"

// UnreadNotifications is the per-identity unread view served from the
// poller cache.
type UnreadNotifications struct {
	Notifications []models.Notification `json:"notifications"`
	Count         int                   `json:"count"`
}

// AcknowledgeResponse returns the link the acknowledged notification
// pointed at, so the presentation layer can navigate to it.
type AcknowledgeResponse struct {
	Link string `json:"link"`
}
