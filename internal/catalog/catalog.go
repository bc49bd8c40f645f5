package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"cinecircle/internal/common"
)

// Movie is a catalog entry. Poster/backdrop are URLs; when the GridFS poster
// store is enabled they point at /api/movies/{id}/poster instead.
type Movie struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Overview     string   `json:"overview"`
	PosterPath   string   `json:"posterPath"`
	BackdropPath string   `json:"backdropPath,omitempty"`
	ReleaseDate  string   `json:"releaseDate"`
	VoteAverage  float64  `json:"voteAverage"`
	Genres       []string `json:"genres,omitempty"`
	Trending     bool     `json:"-"`
}

// Store is the seeded movie catalog. Read-only after construction apart from
// the mutex-guarded seed step, so lookups are cheap copies.
type Store struct {
	mu      sync.RWMutex
	movies  []Movie
	byID    map[string]int
	latency time.Duration
}

func NewStore(latency time.Duration) *Store {
	s := &Store{byID: make(map[string]int), latency: latency}
	s.seed(seedMovies)
	return s
}

func (s *Store) seed(movies []Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movies = append([]Movie(nil), movies...)
	for i, m := range s.movies {
		s.byID[m.ID] = i
	}
}

func (s *Store) ByID(ctx context.Context, id string) (Movie, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return Movie{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byID[id]
	if !ok {
		return Movie{}, fmt.Errorf("movie %s: %w", id, common.ErrNotFound)
	}
	return s.movies[idx], nil
}

func (s *Store) Trending(ctx context.Context) ([]Movie, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]Movie, 0)
	for _, m := range s.movies {
		if m.Trending {
			result = append(result, m)
		}
	}
	return result, nil
}

// Popular returns the full catalog ordered by vote average.
func (s *Store) Popular(ctx context.Context) ([]Movie, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.RLock()
	result := make([]Movie, len(s.movies))
	copy(result, s.movies)
	s.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].VoteAverage > result[j].VoteAverage
	})
	return result, nil
}

// TopRated returns movies rated 8.0 or higher, best first.
func (s *Store) TopRated(ctx context.Context) ([]Movie, error) {
	popular, err := s.Popular(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]Movie, 0)
	for _, m := range popular {
		if m.VoteAverage >= 8.0 {
			result = append(result, m)
		}
	}
	return result, nil
}

// Search does a case-insensitive substring match on titles.
func (s *Store) Search(ctx context.Context, query string) ([]Movie, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Movie, 0)
	if query == "" {
		return result, nil
	}
	for _, m := range s.movies {
		if strings.Contains(strings.ToLower(m.Title), query) {
			result = append(result, m)
		}
	}
	return result, nil
}
