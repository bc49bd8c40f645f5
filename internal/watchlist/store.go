package watchlist

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cinecircle/internal/catalog"
	"cinecircle/internal/common"

	"github.com/google/uuid"
)

// Item is one saved movie. The movie snapshot is copied in at add time;
// readers do not need a catalog round trip to render the list.
type Item struct {
	ID      string        `json:"id"`
	UserID  string        `json:"userId"`
	MovieID string        `json:"movieId"`
	Movie   catalog.Movie `json:"movie"`
	AddedAt time.Time     `json:"addedAt"`
}

// Store owns the per-user watchlists. The duplicate check and the insert are
// one atomic step under the mutex.
type Store struct {
	mu      sync.RWMutex
	byUser  map[string][]Item
	latency time.Duration
}

func NewStore(latency time.Duration) *Store {
	return &Store{byUser: make(map[string][]Item), latency: latency}
}

// Add inserts the movie into the user's watchlist, failing with
// AlreadyInCollection when it is already there.
func (s *Store) Add(ctx context.Context, userID string, movie catalog.Movie) (*Item, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.byUser[userID] {
		if item.MovieID == movie.ID {
			return nil, fmt.Errorf("movie %s for user %s: %w", movie.ID, userID, common.ErrAlreadyInCollection)
		}
	}

	item := Item{
		ID:      uuid.NewString(),
		UserID:  userID,
		MovieID: movie.ID,
		Movie:   movie,
		AddedAt: time.Now(),
	}
	s.byUser[userID] = append(s.byUser[userID], item)

	cp := item
	return &cp, nil
}

// Remove deletes the item with the given id from the user's list.
func (s *Store) Remove(ctx context.Context, userID, itemID string) error {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.byUser[userID]
	for i, item := range items {
		if item.ID == itemID {
			s.byUser[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("watchlist item %s for user %s: %w", itemID, userID, common.ErrNotFound)
}

func (s *Store) List(ctx context.Context, userID string) ([]Item, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.byUser[userID]
	result := make([]Item, len(items))
	copy(result, items)
	return result, nil
}

func (s *Store) Contains(ctx context.Context, userID, movieID string) (bool, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.byUser[userID] {
		if item.MovieID == movieID {
			return true, nil
		}
	}
	return false, nil
}
