package recs

import (
	"context"
	"sync"
	"testing"

	"cinecircle/internal/activity"
	"cinecircle/internal/catalog"
	"cinecircle/internal/common"
	"cinecircle/internal/identity"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	mu     sync.Mutex
	events []common.NotificationEvent
}

func (p *capturePublisher) Publish(event common.NotificationEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

type stubWatchlist struct{ ids []string }

func (s stubWatchlist) MovieIDs(ctx context.Context, userID string) ([]string, error) {
	return s.ids, nil
}

type stubFriends struct{ ids []string }

func (s stubFriends) FriendIDs(ctx context.Context, userID string) ([]string, error) {
	return s.ids, nil
}

func newTestService(t *testing.T, watchlistIDs, friendIDs []string) (Service, *identity.MockDirectory, *activity.Store, *capturePublisher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	directory := identity.NewMockDirectory(ctrl)
	feed := activity.NewStore(0)
	publisher := &capturePublisher{}
	svc := NewService(
		NewStore(0),
		catalog.NewStore(0),
		directory,
		feed,
		publisher,
		stubWatchlist{ids: watchlistIDs},
		stubFriends{ids: friendIDs},
	)
	return svc, directory, feed, publisher
}

func TestService_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("self target", func(t *testing.T) {
		svc, _, _, _ := newTestService(t, nil, nil)
		_, err := svc.Send(ctx, "u1", "u1", "1", "", PriorityMedium)
		require.ErrorIs(t, err, common.ErrSelfTarget)
	})

	t.Run("unknown movie", func(t *testing.T) {
		svc, directory, _, _ := newTestService(t, nil, nil)
		directory.EXPECT().Resolve(ctx, "u1").Return(identity.Profile{ID: "u1", Username: "alice"}, nil)
		_, err := svc.Send(ctx, "u1", "u2", "999", "", PriorityMedium)
		require.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("stamps movie snapshot and notifies", func(t *testing.T) {
		svc, directory, feed, publisher := newTestService(t, nil, nil)
		directory.EXPECT().Resolve(ctx, "u1").Return(identity.Profile{ID: "u1", Username: "alice"}, nil)

		rec, err := svc.Send(ctx, "u1", "u2", "1", "you have to see this", Priority("bogus"))
		require.NoError(t, err)
		assert.Equal(t, "Dune: Part Two", rec.MovieTitle)
		assert.NotEmpty(t, rec.MoviePoster)
		// Invalid priority falls back to medium.
		assert.Equal(t, PriorityMedium, rec.Priority)

		events, err := feed.ListForUser(ctx, "u1", nil)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, activity.RecommendedMovie, events[0].Type)
		assert.Equal(t, "Dune: Part Two", events[0].Data.MovieTitle)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, common.RecommendationType, publisher.events[0].Type)
		assert.Equal(t, "u2", publisher.events[0].UserID)
	})
}

func TestService_UpdateStatus_Invalid(t *testing.T) {
	svc, _, _, _ := newTestService(t, nil, nil)
	err := svc.UpdateStatus(context.Background(), "any", StatusPending)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid status")
}

func TestService_Personalized(t *testing.T) {
	ctx := context.Background()

	t.Run("cold start falls back to rating", func(t *testing.T) {
		svc, _, _, _ := newTestService(t, nil, nil)

		recs, err := svc.Personalized(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, recs, 3)
		// With no watchlist and no friends, scores reduce to vote average.
		assert.Equal(t, "Dune: Part Two", recs[0].Title)
		for _, rec := range recs {
			require.NotEmpty(t, rec.Reasons)
			assert.Equal(t, "similar_users", rec.BasedOn[0].Type)
		}
	})

	t.Run("excludes watchlist and boosts shared genres", func(t *testing.T) {
		// Watchlist holds Dune (Science Fiction, Adventure).
		svc, _, _, _ := newTestService(t, []string{"1"}, nil)

		recs, err := svc.Personalized(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, recs, 3)
		for _, rec := range recs {
			assert.NotEqual(t, "1", rec.MovieID)
		}
		// Everything Everywhere (8.4, Science Fiction) outscores
		// Oppenheimer (8.3, no genre overlap) via the genre boost.
		assert.Equal(t, "Everything Everywhere All at Once", recs[0].Title)
		assert.Contains(t, recs[0].Reasons[0], "Science Fiction")
	})

	t.Run("deterministic", func(t *testing.T) {
		svc, _, _, _ := newTestService(t, []string{"1"}, []string{"u2"})

		first, err := svc.Personalized(ctx, "u1")
		require.NoError(t, err)
		second, err := svc.Personalized(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
