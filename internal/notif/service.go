package notif

import (
	"context"
	"fmt"

	"cinecircle/internal/common"
)

// Service wraps the store with the observer fan-out. It implements
// common.NotificationPublisher for the other domain services.
type Service struct {
	manager *Manager
	store   *Store
}

func NewService(store *Store, workers, bufferSize int) *Service {
	manager := NewManager(workers, bufferSize)
	manager.Subscribe(NewStoreObserver(store))
	return &Service{manager: manager, store: store}
}

// Publish delivers the event to every observer before returning, so a caller
// that just created a friend request can rely on the notification existing.
func (s *Service) Publish(event common.NotificationEvent) {
	s.manager.Notify(event)
}

// PublishAsync queues the event for the worker pool. Used for fire-and-forget
// broadcasts where delivery order does not matter.
func (s *Service) PublishAsync(event common.NotificationEvent) {
	s.manager.NotifyAsync(event)
}

// Broadcast queues a system notification for each listed user.
func (s *Service) Broadcast(ctx context.Context, userIDs []string, title, message string) {
	for _, userID := range userIDs {
		s.PublishAsync(common.NotificationEvent{
			Type:    common.SystemType,
			UserID:  userID,
			Title:   title,
			Message: message,
		})
	}
}

// Create stores a notification directly, bypassing settings. The explicit
// create path is part of the store contract and is never gated.
func (s *Service) Create(ctx context.Context, userID string, notifType common.NotificationType, title, message string, data common.NotificationMetadata) (*Notification, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if title == "" || message == "" {
		return nil, fmt.Errorf("title and message are required")
	}
	return s.store.Create(ctx, userID, notifType, title, message, data)
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]Notification, error) {
	return s.store.ListForUser(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, notificationID string) error {
	return s.store.MarkRead(ctx, notificationID)
}

func (s *Service) MarkAllRead(ctx context.Context, userID string) error {
	return s.store.MarkAllRead(ctx, userID)
}

func (s *Service) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.store.UnreadCount(ctx, userID)
}

func (s *Service) SettingsFor(ctx context.Context, userID string) (Settings, error) {
	return s.store.SettingsFor(ctx, userID)
}

func (s *Service) UpdateSettings(ctx context.Context, userID string, settings Settings) error {
	return s.store.UpdateSettings(ctx, userID, settings)
}

func (s *Service) Shutdown() {
	s.manager.Shutdown()
}
