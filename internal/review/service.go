package review

import (
	"context"
	"fmt"

	"cinecircle/internal/catalog"
	"cinecircle/internal/common"
	"cinecircle/internal/identity"
)

type MovieResolver interface {
	ByID(ctx context.Context, id string) (catalog.Movie, error)
}

type Service interface {
	Add(ctx context.Context, userID, movieID string, rating int, content string, spoilerWarning bool) (*Review, error)
	ListForMovie(ctx context.Context, movieID string) ([]Review, error)
	StatsForMovie(ctx context.Context, movieID string) (Stats, error)
	React(ctx context.Context, userID, reviewID string, reactionType ReactionType) (*Review, error)
	UserReaction(ctx context.Context, userID, reviewID string) (*Reaction, error)
}

type service struct {
	store     *Store
	movies    MovieResolver
	directory identity.Directory
	notifier  common.NotificationPublisher
}

func NewService(store *Store, movies MovieResolver, directory identity.Directory, notifier common.NotificationPublisher) Service {
	return &service{store: store, movies: movies, directory: directory, notifier: notifier}
}

func (s *service) Add(ctx context.Context, userID, movieID string, rating int, content string, spoilerWarning bool) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	if content == "" {
		return nil, fmt.Errorf("review content is required")
	}

	movie, err := s.movies.ByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	profile, err := s.directory.Resolve(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve reviewer: %w", err)
	}

	return s.store.Add(ctx, Review{
		UserID:         profile.ID,
		Username:       profile.Username,
		UserAvatar:     profile.Avatar,
		MovieID:        movie.ID,
		MovieTitle:     movie.Title,
		Rating:         rating,
		Content:        content,
		SpoilerWarning: spoilerWarning,
	})
}

func (s *service) ListForMovie(ctx context.Context, movieID string) ([]Review, error) {
	return s.store.ListForMovie(ctx, movieID)
}

func (s *service) StatsForMovie(ctx context.Context, movieID string) (Stats, error) {
	return s.store.StatsForMovie(ctx, movieID)
}

// React stores the reaction and notifies the review author on likes.
// Self-reactions never notify.
func (s *service) React(ctx context.Context, userID, reviewID string, reactionType ReactionType) (*Review, error) {
	if reactionType != ReactionLike && reactionType != ReactionDislike {
		return nil, fmt.Errorf("invalid reaction type %q", reactionType)
	}

	updated, err := s.store.React(ctx, userID, reviewID, reactionType)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil && reactionType == ReactionLike && updated.UserID != userID {
		reactor, err := s.directory.Resolve(ctx, userID)
		if err == nil {
			s.notifier.Publish(common.NotificationEvent{
				Type:          common.ReviewLikeType,
				UserID:        updated.UserID,
				TriggerUserID: userID,
				Title:         "Someone liked your review",
				Message:       fmt.Sprintf("%s liked your review of %s", reactor.Username, updated.MovieTitle),
				Metadata:      common.NotificationMetadata{"reviewId": updated.ID, "movieId": updated.MovieID},
			})
		}
	}
	return updated, nil
}

func (s *service) UserReaction(ctx context.Context, userID, reviewID string) (*Reaction, error) {
	return s.store.UserReaction(ctx, userID, reviewID)
}
