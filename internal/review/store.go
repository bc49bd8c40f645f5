package review

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cinecircle/internal/common"

	"github.com/google/uuid"
)

type ReactionType string

const (
	ReactionLike    ReactionType = "like"
	ReactionDislike ReactionType = "dislike"
)

type Review struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Username       string    `json:"username"`
	UserAvatar     *string   `json:"userAvatar,omitempty"`
	MovieID        string    `json:"movieId"`
	MovieTitle     string    `json:"movieTitle"`
	Rating         int       `json:"rating"`
	Content        string    `json:"content"`
	SpoilerWarning bool      `json:"spoilerWarning"`
	Likes          int       `json:"likes"`
	Dislikes       int       `json:"dislikes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Reaction struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	ReviewID  string       `json:"reviewId"`
	Type      ReactionType `json:"type"`
	CreatedAt time.Time    `json:"createdAt"`
}

type Stats struct {
	TotalReviews       int         `json:"totalReviews"`
	AverageRating      float64     `json:"averageRating"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
}

// Store owns the per-movie review lists and the global reaction table. A
// user has at most one reaction per review; reacting again replaces it.
type Store struct {
	mu        sync.RWMutex
	byMovie   map[string][]Review
	reactions []Reaction
	latency   time.Duration
}

func NewStore(latency time.Duration) *Store {
	return &Store{byMovie: make(map[string][]Review), latency: latency}
}

func (s *Store) Add(ctx context.Context, review Review) (*Review, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	now := time.Now()
	review.ID = uuid.NewString()
	review.Likes = 0
	review.Dislikes = 0
	review.CreatedAt = now
	review.UpdatedAt = now

	s.mu.Lock()
	s.byMovie[review.MovieID] = append(s.byMovie[review.MovieID], review)
	s.mu.Unlock()

	cp := review
	return &cp, nil
}

func (s *Store) ListForMovie(ctx context.Context, movieID string) ([]Review, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := s.byMovie[movieID]
	result := make([]Review, len(reviews))
	copy(result, reviews)
	return result, nil
}

func (s *Store) StatsForMovie(ctx context.Context, movieID string) (Stats, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return Stats{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := s.byMovie[movieID]
	stats := Stats{RatingDistribution: make(map[int]int)}
	if len(reviews) == 0 {
		return stats, nil
	}

	total := 0
	for _, review := range reviews {
		total += review.Rating
		stats.RatingDistribution[review.Rating]++
	}
	stats.TotalReviews = len(reviews)
	stats.AverageRating = float64(total) / float64(len(reviews))
	return stats, nil
}

// React replaces the user's existing reaction to the review, if any, and
// recomputes the review's like/dislike counts. Unknown review ids fail
// NotFound.
func (s *Store) React(ctx context.Context, userID, reviewID string, reactionType ReactionType) (*Review, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	movieID, idx := s.findReview(reviewID)
	if idx < 0 {
		return nil, fmt.Errorf("review %s: %w", reviewID, common.ErrNotFound)
	}

	for i, reaction := range s.reactions {
		if reaction.UserID == userID && reaction.ReviewID == reviewID {
			s.reactions = append(s.reactions[:i], s.reactions[i+1:]...)
			break
		}
	}
	s.reactions = append(s.reactions, Reaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		ReviewID:  reviewID,
		Type:      reactionType,
		CreatedAt: time.Now(),
	})

	likes, dislikes := 0, 0
	for _, reaction := range s.reactions {
		if reaction.ReviewID != reviewID {
			continue
		}
		if reaction.Type == ReactionLike {
			likes++
		} else {
			dislikes++
		}
	}
	s.byMovie[movieID][idx].Likes = likes
	s.byMovie[movieID][idx].Dislikes = dislikes
	s.byMovie[movieID][idx].UpdatedAt = time.Now()

	cp := s.byMovie[movieID][idx]
	return &cp, nil
}

// UserReaction returns the user's reaction to the review, or nil when none.
func (s *Store) UserReaction(ctx context.Context, userID, reviewID string) (*Reaction, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, reaction := range s.reactions {
		if reaction.UserID == userID && reaction.ReviewID == reviewID {
			cp := reaction
			return &cp, nil
		}
	}
	return nil, nil
}

// findReview is called with the lock held.
func (s *Store) findReview(reviewID string) (string, int) {
	for movieID, reviews := range s.byMovie {
		for i := range reviews {
			if reviews[i].ID == reviewID {
				return movieID, i
			}
		}
	}
	return "", -1
}
