package watchlist

import (
	"context"
	"fmt"

	"cinecircle/internal/activity"
	"cinecircle/internal/catalog"
	"cinecircle/internal/identity"
)

type MovieResolver interface {
	ByID(ctx context.Context, id string) (catalog.Movie, error)
}

type Service interface {
	Add(ctx context.Context, userID, movieID string) (*Item, error)
	Remove(ctx context.Context, userID, itemID string) error
	List(ctx context.Context, userID string) ([]Item, error)
	Contains(ctx context.Context, userID, movieID string) (bool, error)
	MovieIDs(ctx context.Context, userID string) ([]string, error)
}

type service struct {
	store     *Store
	movies    MovieResolver
	directory identity.Directory
	feed      *activity.Store
}

func NewService(store *Store, movies MovieResolver, directory identity.Directory, feed *activity.Store) Service {
	return &service{store: store, movies: movies, directory: directory, feed: feed}
}

// Add resolves the movie, stores the item, and appends the added-movie event
// so friends see it in their feed.
func (s *service) Add(ctx context.Context, userID, movieID string) (*Item, error) {
	movie, err := s.movies.ByID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	item, err := s.store.Add(ctx, userID, movie)
	if err != nil {
		return nil, err
	}

	profile, err := s.directory.Resolve(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	if _, err := s.feed.Append(ctx, profile.ID, profile.Username, activity.AddedMovie, activity.EventData{
		MovieID:    movie.ID,
		MovieTitle: movie.Title,
	}); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) Remove(ctx context.Context, userID, itemID string) error {
	return s.store.Remove(ctx, userID, itemID)
}

func (s *service) List(ctx context.Context, userID string) ([]Item, error) {
	return s.store.List(ctx, userID)
}

func (s *service) Contains(ctx context.Context, userID, movieID string) (bool, error) {
	return s.store.Contains(ctx, userID, movieID)
}

// MovieIDs feeds the personalized recommendation scorer.
func (s *service) MovieIDs(ctx context.Context, userID string) ([]string, error) {
	items, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.MovieID)
	}
	return ids, nil
}
