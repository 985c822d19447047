package workers

import (
	"context"
	"strings"
	"sync"
	"time"

	"talentlink/internal/logger"
	"talentlink/internal/marketplace"
	"talentlink/internal/models"
)

// NotificationPoller re-fetches the marketplace notification list on a
// fixed interval and keeps the unread items in memory. Identity filtering
// happens on read; the poller itself is identity-agnostic.
type NotificationPoller struct {
	client   *marketplace.Client
	interval time.Duration

	mu     sync.RWMutex
	unread []models.Notification
	loaded bool
}

func NewNotificationPoller(client *marketplace.Client, interval time.Duration) *NotificationPoller {
	return &NotificationPoller{
		client:   client,
		interval: interval,
	}
}

// Start runs the poll loop until the context is cancelled. The ticker is
// rearmed on every tick; one failed poll keeps the previous snapshot.
func (p *NotificationPoller) Start(ctx context.Context) {
	p.PollOnce(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("notification poller stopped")
			return
		case <-ticker.C:
			p.PollOnce(ctx)
		}
	}
}

// PollOnce fetches the full list and swaps in the unread subset.
func (p *NotificationPoller) PollOnce(ctx context.Context) {
	all, err := p.client.ListNotifications(ctx)
	if err != nil {
		logger.WorkerLog("notification_poller", "poll", err)
		return
	}

	unread := make([]models.Notification, 0, len(all))
	for _, n := range all {
		if !n.IsRead {
			unread = append(unread, n)
		}
	}

	p.mu.Lock()
	p.unread = unread
	p.loaded = true
	p.mu.Unlock()
}

// Loaded reports whether at least one poll has completed.
func (p *NotificationPoller) Loaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loaded
}

// UnreadFor returns the unread notifications whose user_name matches the
// given display name, trimmed and case-insensitive.
func (p *NotificationPoller) UnreadFor(name string) []models.Notification {
	target := strings.ToLower(strings.TrimSpace(name))

	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]models.Notification, 0)
	for _, n := range p.unread {
		if strings.ToLower(strings.TrimSpace(n.UserName)) == target {
			out = append(out, n)
		}
	}
	return out
}

// Drop removes an acknowledged notification from the snapshot so it
// disappears immediately instead of waiting for the next tick.
func (p *NotificationPoller) Drop(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, n := range p.unread {
		if n.ID == id {
			p.unread = append(p.unread[:i], p.unread[i+1:]...)
			return
		}
	}
}
