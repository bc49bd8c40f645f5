package notif

import (
	"context"
	"sort"
	"sync"
	"time"

	"cinecircle/internal/common"

	"github.com/google/uuid"
)

type Notification struct {
	ID        string                      `json:"id"`
	UserID    string                      `json:"userId"`
	Type      common.NotificationType     `json:"type"`
	Title     string                      `json:"title"`
	Message   string                      `json:"message"`
	Data      common.NotificationMetadata `json:"data,omitempty"`
	Read      bool                        `json:"read"`
	CreatedAt time.Time                   `json:"createdAt"`
}

// Settings controls which event types the observer fan-out stores for a user.
// Explicit Create calls are never gated.
type Settings struct {
	FriendRequests       bool `json:"friendRequests"`
	MovieRecommendations bool `json:"movieRecommendations"`
	ReviewLikes          bool `json:"reviewLikes"`
	FriendActivity       bool `json:"friendActivity"`
	SystemUpdates        bool `json:"systemUpdates"`
	EmailNotifications   bool `json:"emailNotifications"`
}

// DefaultSettings is what a user gets before they ever touch the settings page.
func DefaultSettings() Settings {
	return Settings{
		FriendRequests:       true,
		MovieRecommendations: true,
		ReviewLikes:          true,
		FriendActivity:       true,
		SystemUpdates:        true,
		EmailNotifications:   false,
	}
}

// Allows reports whether the settings permit storing an event of this type.
func (s Settings) Allows(t common.NotificationType) bool {
	switch t {
	case common.FriendRequestType:
		return s.FriendRequests
	case common.RecommendationType:
		return s.MovieRecommendations
	case common.ReviewLikeType:
		return s.ReviewLikes
	case common.FriendActivityType:
		return s.FriendActivity
	case common.SystemType:
		return s.SystemUpdates
	default:
		return true
	}
}

// Store owns the per-user notification lists and settings records.
type Store struct {
	mu       sync.RWMutex
	byUser   map[string][]Notification
	settings map[string]Settings
	latency  time.Duration
}

func NewStore(latency time.Duration) *Store {
	return &Store{
		byUser:   make(map[string][]Notification),
		settings: make(map[string]Settings),
		latency:  latency,
	}
}

// Create appends a notification to the user's list. It always succeeds.
func (s *Store) Create(ctx context.Context, userID string, notifType common.NotificationType, title, message string, data common.NotificationMetadata) (*Notification, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	notification := Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		Data:      data,
		Read:      false,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.byUser[userID] = append(s.byUser[userID], notification)
	s.mu.Unlock()

	cp := notification
	return &cp, nil
}

// ListForUser returns the user's notifications, newest first.
func (s *Store) ListForUser(ctx context.Context, userID string) ([]Notification, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.RLock()
	notifications := s.byUser[userID]
	result := make([]Notification, len(notifications))
	copy(result, notifications)
	s.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// MarkRead flips the read flag on the notification with the given id,
// scanning every user's list. A missing id is a no-op, not an error.
func (s *Store) MarkRead(ctx context.Context, notificationID string) error {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, notifications := range s.byUser {
		for i := range notifications {
			if notifications[i].ID == notificationID {
				notifications[i].Read = true
				s.byUser[userID] = notifications
				return nil
			}
		}
	}
	return nil
}

// MarkAllRead flips the read flag on every notification in the user's list.
func (s *Store) MarkAllRead(ctx context.Context, userID string) error {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	notifications := s.byUser[userID]
	for i := range notifications {
		notifications[i].Read = true
	}
	s.byUser[userID] = notifications
	return nil
}

func (s *Store) UnreadCount(ctx context.Context, userID string) (int, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.byUser[userID] {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// SettingsFor returns the user's settings, or the defaults when unset.
func (s *Store) SettingsFor(ctx context.Context, userID string) (Settings, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return Settings{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if settings, ok := s.settings[userID]; ok {
		return settings, nil
	}
	return DefaultSettings(), nil
}

// UpdateSettings replaces the user's settings record.
func (s *Store) UpdateSettings(ctx context.Context, userID string, settings Settings) error {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[userID] = settings
	return nil
}
