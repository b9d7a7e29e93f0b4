package store

import (
	"sync"
	"time"

	"joao23.app/social-feed/models"
)

// NotificationStore keeps the in-app notification feed, most recent first.
type NotificationStore struct {
	mu     sync.Mutex
	items  []*models.Notification
	nextID int64
}

func NewNotificationStore() *NotificationStore {
	return &NotificationStore{nextID: 1}
}

func (s *NotificationStore) Add(kind models.NotificationKind, actor, message string) *models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := &models.Notification{
		ID:        s.nextID,
		Kind:      kind,
		Actor:     actor,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	s.nextID++

	s.items = append([]*models.Notification{n}, s.items...)
	return n
}

// List returns all notifications, most recent first.
func (s *NotificationStore) List() []*models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Notification, len(s.items))
	copy(out, s.items)
	return out
}

// ListKind returns only notifications of the given kind, most recent first.
func (s *NotificationStore) ListKind(kind models.NotificationKind) []*models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Notification
	for _, n := range s.items {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}
