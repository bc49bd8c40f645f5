package activity

import (
	"context"
	"sort"
	"sync"
	"time"

	"cinecircle/internal/common"

	"github.com/google/uuid"
)

type EventType string

const (
	AddedMovie       EventType = "added-movie"
	RecommendedMovie EventType = "recommended-movie"
	BecameFriends    EventType = "became-friends"
)

// EventData carries the id copies a reader resolves against the movie catalog
// or the identity directory.
type EventData struct {
	MovieID    string `json:"movieId,omitempty"`
	MovieTitle string `json:"movieTitle,omitempty"`
	FriendID   string `json:"friendId,omitempty"`
	FriendName string `json:"friendName,omitempty"`
}

type Event struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Type      EventType `json:"type"`
	Data      EventData `json:"data"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store holds the global append-only activity log. Reads are filtered to the
// requesting user plus the friend ids the caller supplies; the store never
// consults the friend graph itself.
type Store struct {
	mu      sync.RWMutex
	events  []Event
	latency time.Duration
}

func NewStore(latency time.Duration) *Store {
	return &Store{latency: latency}
}

func (s *Store) Append(ctx context.Context, userID, username string, eventType EventType, data EventData) (*Event, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	event := Event{
		ID:        uuid.NewString(),
		UserID:    userID,
		Username:  username,
		Type:      eventType,
		Data:      data,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.events = append(s.events, event)
	s.mu.Unlock()

	cp := event
	return &cp, nil
}

// ListForUser returns events authored by userID or any id in friendIDs,
// newest first.
func (s *Store) ListForUser(ctx context.Context, userID string, friendIDs []string) ([]Event, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	visible := make(map[string]bool, len(friendIDs)+1)
	visible[userID] = true
	for _, id := range friendIDs {
		visible[id] = true
	}

	s.mu.RLock()
	result := make([]Event, 0)
	for _, event := range s.events {
		if visible[event.UserID] {
			result = append(result, event)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
