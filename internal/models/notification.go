package models

// Notification is a per-identity unread message with a target link.
// user_name is a plain-text match key, not a foreign key; the marketplace
// creates notifications, this service only reads and acknowledges them.
type Notification struct {
	ID        int    `json:"id"`
	User      int    `json:"user"`
	UserName  string `json:"user_name"`
	Message   string `json:"message"`
	Link      string `json:"link"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at,omitempty"`
}
