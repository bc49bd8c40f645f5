package recs

import (
	"context"
	"fmt"

	"cinecircle/internal/activity"
	"cinecircle/internal/catalog"
	"cinecircle/internal/common"
	"cinecircle/internal/identity"
)

// MovieResolver is the slice of the catalog the service needs: sender supplies
// only a movie id, the service stamps title and poster onto the record.
type MovieResolver interface {
	ByID(ctx context.Context, id string) (catalog.Movie, error)
	Popular(ctx context.Context) ([]catalog.Movie, error)
}

type Service interface {
	Send(ctx context.Context, fromUserID, toUserID, movieID, message string, priority Priority) (*Recommendation, error)
	ListForUser(ctx context.Context, userID string) ([]Recommendation, error)
	UpdateStatus(ctx context.Context, recommendationID string, status Status) error
	Personalized(ctx context.Context, userID string) ([]PersonalizedRecommendation, error)
}

type service struct {
	store     *Store
	movies    MovieResolver
	directory identity.Directory
	feed      *activity.Store
	notifier  common.NotificationPublisher
	watchlist WatchlistSource
	friends   FriendSource
}

// WatchlistSource and FriendSource feed the personalized scorer without
// importing the watchlist/social packages.
type WatchlistSource interface {
	MovieIDs(ctx context.Context, userID string) ([]string, error)
}

type FriendSource interface {
	FriendIDs(ctx context.Context, userID string) ([]string, error)
}

func NewService(
	store *Store,
	movies MovieResolver,
	directory identity.Directory,
	feed *activity.Store,
	notifier common.NotificationPublisher,
	watchlist WatchlistSource,
	friends FriendSource,
) Service {
	return &service{
		store:     store,
		movies:    movies,
		directory: directory,
		feed:      feed,
		notifier:  notifier,
		watchlist: watchlist,
		friends:   friends,
	}
}

func (s *service) Send(ctx context.Context, fromUserID, toUserID, movieID, message string, priority Priority) (*Recommendation, error) {
	if fromUserID == toUserID {
		return nil, fmt.Errorf("recommendation: %w", common.ErrSelfTarget)
	}
	if !ValidPriority(priority) {
		priority = PriorityMedium
	}

	from, err := s.directory.Resolve(ctx, fromUserID)
	if err != nil {
		return nil, fmt.Errorf("resolve sender: %w", err)
	}
	movie, err := s.movies.ByID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	rec, err := s.store.Add(ctx, Recommendation{
		FromUserID:   from.ID,
		FromUsername: from.Username,
		FromAvatar:   from.Avatar,
		ToUserID:     toUserID,
		MovieID:      movie.ID,
		MovieTitle:   movie.Title,
		MoviePoster:  movie.PosterPath,
		Message:      message,
		Priority:     priority,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.feed.Append(ctx, from.ID, from.Username, activity.RecommendedMovie, activity.EventData{
		MovieID:    movie.ID,
		MovieTitle: movie.Title,
	}); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Publish(common.NotificationEvent{
			Type:          common.RecommendationType,
			UserID:        toUserID,
			TriggerUserID: from.ID,
			Title:         "New Movie Recommendation",
			Message:       fmt.Sprintf("%s recommended %s to you", from.Username, movie.Title),
			Metadata:      common.NotificationMetadata{"recommendationId": rec.ID, "movieId": movie.ID},
		})
	}
	return rec, nil
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]Recommendation, error) {
	return s.store.ListForUser(ctx, userID)
}

func (s *service) UpdateStatus(ctx context.Context, recommendationID string, status Status) error {
	if !ValidStatus(status) {
		return fmt.Errorf("invalid status %q", status)
	}
	return s.store.UpdateStatus(ctx, recommendationID, status)
}
