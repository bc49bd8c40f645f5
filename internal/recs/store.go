package recs

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"cinecircle/internal/common"

	"github.com/google/uuid"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
	StatusWatched  Status = "watched"
)

// ValidStatus reports whether s is a settable recommendation status. Pending
// is the creation state only; callers cannot move a record back to it.
func ValidStatus(s Status) bool {
	return s == StatusAccepted || s == StatusDeclined || s == StatusWatched
}

func ValidPriority(p Priority) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Recommendation is a directed movie suggestion, independent of friendship.
type Recommendation struct {
	ID           string     `json:"id"`
	FromUserID   string     `json:"fromUserId"`
	FromUsername string     `json:"fromUsername"`
	FromAvatar   *string    `json:"fromAvatar,omitempty"`
	ToUserID     string     `json:"toUserId"`
	MovieID      string     `json:"movieId"`
	MovieTitle   string     `json:"movieTitle"`
	MoviePoster  string     `json:"moviePoster"`
	Message      string     `json:"message"`
	Priority     Priority   `json:"priority"`
	Status       Status     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	ViewedAt     *time.Time `json:"viewedAt,omitempty"`
}

// Store owns the recommendation table, keyed by receiver. Status updates scan
// every list because ids are globally unique and the caller only has the id.
type Store struct {
	mu      sync.RWMutex
	byUser  map[string][]Recommendation
	latency time.Duration
}

func NewStore(latency time.Duration) *Store {
	return &Store{byUser: make(map[string][]Recommendation), latency: latency}
}

// Add always succeeds: no duplicate check, no friendship check.
func (s *Store) Add(ctx context.Context, rec Recommendation) (*Recommendation, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	rec.ID = uuid.NewString()
	rec.Status = StatusPending
	rec.CreatedAt = time.Now()
	rec.ViewedAt = nil

	s.mu.Lock()
	s.byUser[rec.ToUserID] = append(s.byUser[rec.ToUserID], rec)
	s.mu.Unlock()

	cp := rec
	return &cp, nil
}

// ListForUser returns the recommendations addressed to userID, newest first.
func (s *Store) ListForUser(ctx context.Context, userID string) ([]Recommendation, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.RLock()
	recs := s.byUser[userID]
	result := make([]Recommendation, len(recs))
	copy(result, recs)
	s.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// UpdateStatus sets the status of the recommendation with the given id. Every
// transition out of pending stamps ViewedAt once; later overwrites keep the
// original timestamp. No transition ordering is enforced beyond that.
func (s *Store) UpdateStatus(ctx context.Context, recommendationID string, status Status) error {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, recs := range s.byUser {
		for i := range recs {
			if recs[i].ID != recommendationID {
				continue
			}
			recs[i].Status = status
			if recs[i].ViewedAt == nil {
				now := time.Now()
				recs[i].ViewedAt = &now
			}
			s.byUser[userID] = recs
			return nil
		}
	}
	return fmt.Errorf("recommendation %s: %w", recommendationID, common.ErrNotFound)
}
