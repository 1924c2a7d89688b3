package services

import (
	"sort"

	"homestay-backend/models"
	"homestay-backend/store"
)

type NotificationService struct {
	store *store.Store
}

func NewNotificationService(st *store.Store) *NotificationService {
	return &NotificationService{store: st}
}

// List returns notifications newest first.
func (s *NotificationService) List() ([]*models.Notification, error) {
	items, err := s.store.Notifications.All()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *NotificationService) Create(n *models.Notification) (*models.Notification, error) {
	n.Read = false
	return s.store.Notifications.Create(n)
}

func (s *NotificationService) MarkRead(id string) (bool, error) {
	_, ok, err := s.store.Notifications.Update(id, map[string]any{"read": true})
	return ok, err
}

func (s *NotificationService) UnreadCount() (int, error) {
	unread, err := s.store.Notifications.Find(func(n *models.Notification) bool { return !n.Read })
	if err != nil {
		return 0, err
	}
	return len(unread), nil
}
