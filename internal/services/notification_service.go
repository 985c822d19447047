package services

import (
	"context"

	"talentlink/internal/marketplace"
	"talentlink/internal/models"
	"talentlink/internal/services/dto"
	"talentlink/internal/session"
	"talentlink/internal/workers"
	"talentlink/pkg/apperrors"
)

// NotificationService serves the per-identity unread view and runs the
// acknowledge flow.
type NotificationService interface {
	Unread(ctx context.Context, sess *session.Session) (*dto.UnreadNotifications, error)
	Acknowledge(ctx context.Context, sess *session.Session, notificationID int) (*dto.AcknowledgeResponse, error)
}

type notificationService struct {
	client *marketplace.Client
	poller *workers.NotificationPoller
}

func NewNotificationService(client *marketplace.Client, poller *workers.NotificationPoller) NotificationService {
	return &notificationService{
		client: client,
		poller: poller,
	}
}

// Unread serves from the poller snapshot; before the first poll completes
// it falls back to a direct fetch so a fresh login is never blank.
func (s *notificationService) Unread(ctx context.Context, sess *session.Session) (*dto.UnreadNotifications, error) {
	name := sess.DisplayName()

	if s.poller != nil && s.poller.Loaded() {
		items := s.poller.UnreadFor(name)
		return &dto.UnreadNotifications{Notifications: items, Count: len(items)}, nil
	}

	all, err := s.client.WithToken(sess.Access).ListNotifications(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]models.Notification, 0)
	for _, n := range all {
		if !n.IsRead && sess.MatchesName(n.UserName) {
			items = append(items, n)
		}
	}
	return &dto.UnreadNotifications{Notifications: items, Count: len(items)}, nil
}

// Acknowledge marks the notification read upstream first and only then
// drops it locally. A failed PATCH leaves the item visible, so the local
// view never disagrees with the server copy.
func (s *notificationService) Acknowledge(ctx context.Context, sess *session.Session, notificationID int) (*dto.AcknowledgeResponse, error) {
	link := ""
	if s.poller != nil {
		for _, n := range s.poller.UnreadFor(sess.DisplayName()) {
			if n.ID == notificationID {
				link = n.Link
				break
			}
		}
	}
	if link == "" {
		all, err := s.client.WithToken(sess.Access).ListNotifications(ctx)
		if err != nil {
			return nil, err
		}
		found := false
		for _, n := range all {
			if n.ID == notificationID {
				if !sess.MatchesName(n.UserName) {
					return nil, apperrors.NewNotFoundError("notifications", "Notification not found")
				}
				link = n.Link
				found = true
				break
			}
		}
		if !found {
			return nil, apperrors.NewNotFoundError("notifications", "Notification not found")
		}
	}

	if err := s.client.WithToken(sess.Access).MarkNotificationRead(ctx, notificationID); err != nil {
		return nil, err
	}
	if s.poller != nil {
		s.poller.Drop(notificationID)
	}
	return &dto.AcknowledgeResponse{Link: link}, nil
}
