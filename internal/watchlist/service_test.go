package watchlist

import (
	"context"
	"testing"

	"cinecircle/internal/activity"
	"cinecircle/internal/catalog"
	"cinecircle/internal/common"
	"cinecircle/internal/identity"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	directory := identity.NewMockDirectory(ctrl)
	feed := activity.NewStore(0)
	svc := NewService(NewStore(0), catalog.NewStore(0), directory, feed)
	ctx := context.Background()

	t.Run("unknown movie", func(t *testing.T) {
		_, err := svc.Add(ctx, "u1", "999")
		require.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("stores snapshot and feeds the activity log", func(t *testing.T) {
		directory.EXPECT().Resolve(ctx, "u1").Return(identity.Profile{ID: "u1", Username: "alice"}, nil)

		item, err := svc.Add(ctx, "u1", "1")
		require.NoError(t, err)
		assert.Equal(t, "Dune: Part Two", item.Movie.Title)

		events, err := feed.ListForUser(ctx, "u1", nil)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, activity.AddedMovie, events[0].Type)
		assert.Equal(t, "1", events[0].Data.MovieID)
	})

	t.Run("movie ids for the scorer", func(t *testing.T) {
		ids, err := svc.MovieIDs(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{"1"}, ids)
	})
}
